package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/shopkeep/shopkeep-server/internal/api/rest/handler"
	"github.com/shopkeep/shopkeep-server/internal/api/rest/middleware"
	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// HealthPath is served outside of the API prefix and is not traced.
const HealthPath = "/health"

// AuthService issues tokens and resolves them back to customers.
type AuthService interface {
	handler.AuthService
	middleware.CustomerResolver
}

// Options configures the REST surface.
type Options struct {
	APIPrefix     string
	CORSOrigins   []string
	MaxImageBytes int64
	ProjectName   string
	Version       string
}

// Router wires REST handlers and middleware onto an echo instance.
type Router struct {
	authService     AuthService
	customerService handler.CustomerService
	catalogService  handler.CatalogService
	orderService    handler.OrderService
	pinger          handler.Pinger
	contextManager  model.ContextManager
	logger          *logger.Logger
	opts            Options
}

// New creates new REST Router instance.
func New(
	authService AuthService,
	customerService handler.CustomerService,
	catalogService handler.CatalogService,
	orderService handler.OrderService,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:     authService,
		customerService: customerService,
		catalogService:  catalogService,
		orderService:    orderService,
		pinger:          pinger,
		contextManager:  contextManager,
		logger:          logger,
		opts:            opts,
	}
}

// Register builds the echo instance with every route and middleware.
// Registration and token issuance are public; everything else under the
// API prefix requires a bearer token.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.NewErrorHandler(r.logger).HandleError

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.NewLogging(r.contextManager, r.logger).Handle)
	e.Use(echomw.Recover())
	if len(r.opts.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     r.opts.CORSOrigins,
			AllowCredentials: true,
			AllowHeaders: []string{
				echo.HeaderOrigin,
				echo.HeaderContentType,
				echo.HeaderAccept,
				echo.HeaderAuthorization,
			},
		}))
	}

	auth := handler.NewAuth(r.authService, r.logger)
	customers := handler.NewCustomer(r.customerService, r.logger)
	products := handler.NewProduct(r.catalogService, r.opts.MaxImageBytes, r.logger)
	orders := handler.NewOrder(r.orderService, r.logger)
	health := handler.NewHealth(r.pinger, r.opts.ProjectName, r.opts.Version, r.logger)
	authenticated := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger).Handle

	e.GET(HealthPath, health.Check)

	api := e.Group(r.opts.APIPrefix)

	api.POST("/auth/token", auth.Token)
	api.POST("/customers", customers.Create)

	api.GET("/customer/:id", customers.Get, authenticated)
	api.GET("/customers", customers.List, authenticated)

	api.POST("/products", products.Create, authenticated)
	api.GET("/product/:name", products.GetByName, authenticated)
	api.GET("/products", products.List, authenticated)
	api.PUT("/products/:id/image", products.UploadImage, authenticated)
	api.GET("/products/:id/image", products.DownloadImage, authenticated)

	api.POST("/orders", orders.Create, authenticated)
	api.GET("/order/:customer_id", orders.ListByCustomer, authenticated)
	api.GET("/orders", orders.List, authenticated)

	return e
}
