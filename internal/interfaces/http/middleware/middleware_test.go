package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(handlers...)
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())
	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

		got := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, seen)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")

		w := serve(engine, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", seen)
	})
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	engine := newEngine(RequestID(), Recovery(logger.NewNopLogger()))
	engine.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
}

func TestErrorHandlerRendersAttachedError(t *testing.T) {
	engine := newEngine(ErrorHandler(logger.NewNopLogger()))
	engine.GET("/missing", func(c *gin.Context) {
		_ = c.Error(errors.NewNotFoundError("order not found"))
	})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestCORS(t *testing.T) {
	engine := newEngine(CORS([]string{"http://localhost:3000"}))
	engine.GET("/orders", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allowed origin echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := serve(engine, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Origin", "http://evil.example")

		w := serve(engine, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/orders", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := serve(engine, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	engine := newEngine(SecurityHeaders())
	engine.GET("/orders", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/swagger/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := serve(engine, httptest.NewRequest(http.MethodGet, "/orders", nil))
	docs := serve(engine, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, "nosniff", api.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, api.Header().Get("Content-Security-Policy"), "default-src 'none'")
	assert.Contains(t, docs.Header().Get("Content-Security-Policy"), "'unsafe-inline'")
}
