package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-simulator/internal/handler/httperr"
	"hotel-simulator/internal/pkg/config"
	"hotel-simulator/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().Log
	cfg.Level = "debug"
	l := newLogger(cfg, buf)

	engine := gin.New()
	engine.Use(CustomRecovery(l.GetSlogLogger()))
	engine.Use(l.LoggingMiddleware())
	engine.Use(ErrorHandler())
	return engine
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("generates a request id", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newTestEngine(&buf)
		var seen string
		engine.GET("/ping", func(c *gin.Context) {
			seen = GetRequestID(c)
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(requestIDHeader))
		assert.Contains(t, buf.String(), "Request started")
		assert.Contains(t, buf.String(), "Request completed")
		assert.Contains(t, buf.String(), "request_id="+seen)
	})

	t.Run("keeps the caller's request id", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newTestEngine(&buf)
		engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newTestEngine(&buf)
		engine.GET("/bad", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid id", nil)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status_code=400")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders a recorded public error", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newTestEngine(&buf)
		engine.GET("/err", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "Not enough rooms available"
			_ = c.Error(&gin.Error{Err: errs.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Not enough rooms available"}}`, w.Body.String())
	})

	t.Run("private errors become 500", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newTestEngine(&buf)
		engine.GET("/err", func(c *gin.Context) {
			_ = c.Error(errs.New("hidden"))
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "hidden")
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "stack=")
	})
}

func TestCustomRecovery(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(&buf)
	engine.GET("/panic", func(_ *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARN":    "WARN",
		"error":   "ERROR",
		"info":    "INFO",
		"verbose": "INFO",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(in).String())
		})
	}
}
