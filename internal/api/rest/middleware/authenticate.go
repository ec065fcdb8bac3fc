package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// CustomerResolver resolves a bearer token to the customer it was issued for.
type CustomerResolver interface {
	ResolveCurrentUser(ctx context.Context, token string) (model.Customer, error)
}

// Authenticate validates bearer tokens and injects the customer into the
// request context.
type Authenticate struct {
	resolver       CustomerResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver CustomerResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token with
// model.ErrUnauthorized.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			m.logger.Debug("Authenticate middleware: missing bearer token",
				"path", c.Path())
			return model.ErrUnauthorized
		}

		req := c.Request()
		customer, err := m.resolver.ResolveCurrentUser(req.Context(), token)
		if err != nil {
			return err
		}

		c.SetRequest(req.WithContext(m.contextManager.SetCustomerToContext(req.Context(), customer)))

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
