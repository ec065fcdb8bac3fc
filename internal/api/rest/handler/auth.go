package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// AuthService defines the password login operation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.AccessToken, error)
}

// Auth handles the token endpoint.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Token exchanges form-encoded username and password for a bearer token.
func (h *Auth) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	h.logger.Debug("Auth handler: processing token request",
		"username", username)

	if username == "" {
		return model.NewValidationError("username", "field required")
	}
	if password == "" {
		return model.NewValidationError("password", "field required")
	}

	token, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		return err
	}

	h.logger.Info("Auth handler: token issued",
		"username", username)

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}
