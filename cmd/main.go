package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	restctx "github.com/shopkeep/shopkeep-server/internal/api/rest/context"
	"github.com/shopkeep/shopkeep-server/internal/api/rest/router"
	restServer "github.com/shopkeep/shopkeep-server/internal/api/rest/server"
	"github.com/shopkeep/shopkeep-server/internal/config"
	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
	"github.com/shopkeep/shopkeep-server/internal/password"
	"github.com/shopkeep/shopkeep-server/internal/repository/postgres"
	"github.com/shopkeep/shopkeep-server/internal/server"
	"github.com/shopkeep/shopkeep-server/internal/service"
	storage "github.com/shopkeep/shopkeep-server/internal/storage/minio"
	"github.com/shopkeep/shopkeep-server/internal/telemetry"
	"github.com/shopkeep/shopkeep-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	tracing, err := telemetry.NewProvider(ctx, telemetry.Options{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.API.FloatVersion,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
	})
	if err != nil {
		logger.Fatal("failed to initialize tracing", "error", err)
	}

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)

	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	authService := service.NewAuth(customerRepo, hasher, tokenManager, cfg.JWT.AccessTTL, logger)
	customerService := service.NewCustomer(customerRepo, hasher, logger)
	catalogService := service.NewCatalog(productRepo, newImageStorage(ctx, cfg.Storage, logger), cfg.Storage.MaxImageBytes, logger)
	orderService := service.NewOrder(orderRepo, customerRepo, logger)

	r := router.New(
		authService,
		customerService,
		catalogService,
		orderService,
		db,
		restctx.NewManager(),
		logger,
		router.Options{
			APIPrefix:     cfg.HTTP.APIPrefix,
			CORSOrigins:   cfg.HTTP.CORSOrigins,
			MaxImageBytes: cfg.Storage.MaxImageBytes,
			ProjectName:   cfg.API.ProjectName,
			Version:       cfg.API.Version,
		},
	)
	traced := telemetry.Middleware(cfg.Telemetry.ServiceName, tracing.TracerProvider(), router.HealthPath)
	httpServer := restServer.NewHTTPServer(traced(r.Register()), fmt.Sprintf(":%s", cfg.HTTP.Port))

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}
	wg.Wait()

	if err := tracing.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during tracing shutdown", "error", err)
	}

	logger.Info("shutdown complete")
}

// newImageStorage connects to MinIO. Image endpoints answer 503 when the
// endpoint is unset or unreachable; the rest of the API keeps working.
func newImageStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) model.Storage {
	if cfg.Endpoint == "" {
		logger.Info("image storage disabled")
		return nil
	}

	client, err := storage.Dial(ctx, storage.Options{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		logger.Error("failed to initialize image storage", "error", err, "endpoint", cfg.Endpoint)
		return nil
	}
	return client
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
