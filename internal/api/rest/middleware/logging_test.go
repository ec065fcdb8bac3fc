package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restctx "github.com/shopkeep/shopkeep-server/internal/api/rest/context"
	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
	"github.com/shopkeep/shopkeep-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	lg := NewLogging(restctx.NewManager(), testutil.MakeNoopLogger())

	tests := []struct {
		name     string
		handler  echo.HandlerFunc
		wantCode int
	}{
		{
			name: "success path",
			handler: func(c echo.Context) error {
				time.Sleep(10 * time.Millisecond)
				return c.String(http.StatusOK, "ok")
			},
			wantCode: http.StatusOK,
		},
		{
			name: "http error propagates",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusBadRequest, "bad input")
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "plain error becomes internal",
			handler: func(c echo.Context) error {
				return errors.New("boom")
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := lg.Handle(tt.handler)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestLogging_EchoesRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()

	err := NewLogging(restctx.NewManager(), testutil.MakeNoopLogger()).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
}

func TestLogging_LogsAuthenticatedCustomer(t *testing.T) {
	tests := []struct {
		name         string
		authenticate bool
		wantID       any
	}{
		{name: "authenticated", authenticate: true, wantID: float64(7)},
		{name: "anonymous", authenticate: false, wantID: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			manager := restctx.NewManager()
			lg := NewLogging(manager, logger.NewWithFormat(&buf, 0, "json"))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/customers", nil)
			rec := httptest.NewRecorder()

			err := lg.Handle(func(c echo.Context) error {
				if tt.authenticate {
					ctx := manager.SetCustomerToContext(c.Request().Context(), model.Customer{ID: 7})
					c.SetRequest(c.Request().WithContext(ctx))
				}
				return c.NoContent(http.StatusOK)
			})(e.NewContext(req, rec))
			require.NoError(t, err)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "HTTP request completed", entry["msg"])
			assert.Equal(t, tt.wantID, entry["customer_id"])
		})
	}
}
