package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	m := NewRequestIDMiddleware(logger)

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "client id is reused", header: "abc-123_x.y", reuse: true},
		{name: "missing id is generated"},
		{name: "unsafe id is replaced", header: "evil\nrequest_id=forged"},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/designers", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.reuse {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
				assert.Len(t, seen, 36)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	serve := func(debug bool, route string, status int) string {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(logger, cfg)

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())
		c.SetPath(route)
		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.NoContent(status)
		})(c))

		return buf.String()
	}

	assert.Contains(t, serve(true, "/api/products/:id", http.StatusOK), "route=/api/products/:id")
	assert.Empty(t, serve(false, "/api/products/:id", http.StatusOK))
	assert.Contains(t, serve(false, "/api/products/:id", http.StatusInternalServerError), "level=ERROR")
	assert.Empty(t, serve(true, "/health", http.StatusOK))
}
