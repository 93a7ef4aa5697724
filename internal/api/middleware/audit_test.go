package middleware

import (
	"bytes"
	log "log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(log.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { log.SetDefault(prev) })
	return &buf
}

func TestAuditMiddleware(t *testing.T) {
	buf := captureLogs(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware("/api/ping"))
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/api/admin/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200})
	})
	r.GET("/image", func(c *gin.Context) { c.Data(http.StatusOK, "image/png", []byte("PNGDATA")) })

	t.Run("skip path", func(t *testing.T) {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Empty(t, buf.String())
	})

	t.Run("json body", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"name":"Go"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)

		out := buf.String()
		assert.Contains(t, out, "Recv Request")
		assert.Contains(t, out, `{\"name\":\"Go\"}`)
		assert.Contains(t, out, `{\"code\":200}`)
	})

	t.Run("binary response", func(t *testing.T) {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/image", nil))
		assert.NotContains(t, buf.String(), "PNGDATA")
		assert.Contains(t, buf.String(), "[image/png]")
	})
}
