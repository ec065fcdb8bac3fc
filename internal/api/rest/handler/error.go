package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// ErrorHandler turns handler errors into {"detail": ...} responses.
type ErrorHandler struct {
	logger *logger.Logger
}

func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleError is installed as echo's HTTPErrorHandler.
func (h *ErrorHandler) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, detail := errorResponse(err)
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("HTTP handler: request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err.Error())
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, ErrorResponse{Detail: detail})
	}
	if writeErr != nil {
		h.logger.Error("HTTP handler: failed to write error response",
			"error", writeErr.Error())
	}
}

func errorResponse(err error) (int, string) {
	var (
		validationErr *model.ValidationError
		fieldErrs     validator.ValidationErrors
		notFoundErr   *model.CustomerNotFoundError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, describeFieldErrors(fieldErrs)
	case errors.Is(err, model.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, model.ErrDuplicateUsername):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, model.ErrDuplicateProductName):
		return http.StatusBadRequest, "Product already exists"
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect username or password"
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, model.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Image storage is not configured"
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		if httpErr.Message != nil {
			return httpErr.Code, fmt.Sprint(httpErr.Message)
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
