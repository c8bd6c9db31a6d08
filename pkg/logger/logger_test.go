package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")

	l := NewLogger(Config{Env: "production", Level: "info", File: path})
	l.Info("venda registrada", "sale_id", 42)
	l.Debug("descartado no nível info")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "venda registrada")
	assert.Contains(t, string(data), `"sale_id":42`)
	assert.NotContains(t, string(data), "descartado")
}

func TestNewLogger_InvalidLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")

	l := NewLogger(Config{Level: "verbose", File: path})
	l.Debug("debug visível em desenvolvimento")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug visível em desenvolvimento")
}

func TestWith_AddsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")

	l := NewLogger(Config{Env: "production", File: path}).With("component", "settlement")
	l.Warn("membro não encontrado")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"settlement"`)
}

func TestGinMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware(NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("gera id quando ausente", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("propaga id recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}
