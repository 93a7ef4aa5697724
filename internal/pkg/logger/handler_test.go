package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*log.Logger, *bytes.Buffer, *bytes.Buffer) {
	var local, remote bytes.Buffer
	opts := &log.HandlerOptions{Level: log.LevelInfo}
	handler := NewTeeHandler(
		log.NewJSONHandler(&local, opts),
		NewRemoteFilterHandler(log.NewJSONHandler(&remote, opts)),
	)
	return log.New(&ContextHandler{handler}), &local, &remote
}

func TestRemoteFilter(t *testing.T) {
	logger, local, remote := newTestLogger()

	logger.InfoContext(context.Background(), "startup")
	logger.InfoContext(WithTraceID(context.Background(), "req-1"), "handled")
	logger.ErrorContext(context.Background(), "cleanup failed")

	assert.Equal(t, 3, strings.Count(local.String(), "\n"))
	assert.NotContains(t, remote.String(), "startup")
	assert.Contains(t, remote.String(), `"trace_id":"req-1"`)
	assert.Contains(t, remote.String(), "cleanup failed")
}

func TestTraceID(t *testing.T) {
	assert.Equal(t, "", TraceID(context.Background()))
	assert.Equal(t, "abc", TraceID(WithTraceID(context.Background(), "abc")))
}

func TestAccessLineEscapesPath(t *testing.T) {
	line := formatAccess(gin.LogFormatterParams{
		TimeStamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Method:     "GET",
		Path:       `/api/admin/posts?q="x"`,
		StatusCode: 500,
		Request:    httptest.NewRequest(http.MethodGet, "/", nil).WithContext(WithTraceID(context.Background(), "abc")),
	})

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &got))
	assert.Equal(t, `/api/admin/posts?q="x"`, got["path"])
	assert.Equal(t, "ERROR", got["level"])
	assert.Equal(t, "abc", got["trace_id"])
}

func TestRecoverPanicKeepsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.CustomRecovery(recoverPanic))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 500, got["code"])
}
