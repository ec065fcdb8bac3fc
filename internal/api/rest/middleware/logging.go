package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// Logging logs every HTTP request with its outcome and a request id.
type Logging struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(contextManager model.ContextManager, logger *logger.Logger) *Logging {
	return &Logging{
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle logs method, path, status and duration for each request, plus the
// caller's customer id once authentication has run. The X-Request-ID header
// is echoed back, or generated when absent.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		res := c.Response()

		requestID := req.Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		res.Header().Set(echo.HeaderXRequestID, requestID)

		err := next(c)
		if err != nil {
			// Commits the response so the status below is final.
			c.Error(err)
		}

		duration := time.Since(start)
		status := res.Status

		attrs := []any{
			"request_id", requestID,
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds(),
		}
		// Authenticate replaces the request, so read it again.
		if customer, ok := l.contextManager.GetCustomerFromContext(c.Request().Context()); ok {
			attrs = append(attrs, "customer_id", customer.ID)
		}
		l.logger.Info("HTTP request completed", attrs...)

		if status >= 500 && err != nil {
			l.logger.Error("HTTP request failed",
				"request_id", requestID,
				"method", req.Method,
				"path", req.URL.Path,
				"error", err.Error())
		}

		return nil
	}
}
