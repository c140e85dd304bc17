package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "reuses client id",
			header: "client-req-1",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "client-req-1", id)
			},
		},
		{
			name: "generates id when missing",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces id with spaces",
			header: "bad id",
			expectID: func(t *testing.T, id string) {
				assert.NotEqual(t, "bad id", id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})

			assert.NoError(t, handler(c))

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			tt.expectID(t, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.True(t, hasLogger)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	run := func(debug bool, path string, status int) string {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg, "/health").Handle)
		e.GET(path, func(c echo.Context) error {
			return c.NoContent(status)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

		return buf.String()
	}

	assert.Empty(t, run(false, "/api/v1/cart", http.StatusOK))
	assert.Contains(t, run(true, "/api/v1/cart", http.StatusOK), `"status":200`)
	assert.Contains(t, run(false, "/api/v1/cart", http.StatusConflict), `"level":"WARN"`)
	assert.Empty(t, run(true, "/health", http.StatusOK))
}
