//go:build unit

package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-parking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "15:04:05"})
	seen := new(string)
	r := gin.New()
	r.Use(l.LoggingMiddleware())
	r.GET("/api/lots/:id", func(c *gin.Context) {
		*seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		r, seen := newLoggedRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lots/"+uuid.NewString(), nil))

		got := w.Header().Get(requestIDHeader)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, *seen)
	})

	t.Run("propagated from caller", func(t *testing.T) {
		r, seen := newLoggedRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/lots/1", nil)
		req.Header.Set(requestIDHeader, "edge-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "edge-42", w.Header().Get(requestIDHeader))
		assert.Equal(t, "edge-42", *seen)
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		path   string
		status int
		want   slog.Level
	}{
		{"/api/lots", http.StatusOK, slog.LevelInfo},
		{"/health", http.StatusOK, slog.LevelDebug},
		{"/metrics", http.StatusOK, slog.LevelDebug},
		{"/api/lots", http.StatusNotFound, slog.LevelWarn},
		{"/health", http.StatusServiceUnavailable, slog.LevelError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.path, tt.status), "%s %d", tt.path, tt.status)
	}
}
