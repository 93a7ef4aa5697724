package logger

import (
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLine struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id"`
	LogToken    string `json:"log_token"`
	TargetIndex string `json:"target_index"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	ClientIP    string `json:"client_ip"`
}

// SetupGin 注册访问日志与 panic 恢复
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/api/ping"},
		Formatter: formatAccess,
	}))
	r.Use(gin.CustomRecovery(recoverPanic))
}

func formatAccess(p gin.LogFormatterParams) string {
	traceID, _ := p.Keys[TraceIDKey].(string)
	if traceID == "" && p.Request != nil {
		traceID = TraceID(p.Request.Context())
	}
	level := "INFO"
	if p.StatusCode >= http.StatusInternalServerError {
		level = "ERROR"
	}

	// path 可能含引号，交给编码器转义
	b, _ := json.Marshal(accessLine{
		Time:        p.TimeStamp.Format(time.RFC3339),
		Level:       level,
		Msg:         "GIN_ACCESS",
		TraceID:     traceID,
		LogToken:    logToken,
		TargetIndex: targetIndex,
		Method:      p.Method,
		Path:        p.Path,
		Status:      p.StatusCode,
		Latency:     p.Latency.String(),
		ClientIP:    p.ClientIP,
	})
	return string(b) + "\n"
}

// recoverPanic 仍按统一信封返回
func recoverPanic(c *gin.Context, recovered any) {
	log.ErrorContext(c.Request.Context(), "Handler Panic",
		log.String("method", c.Request.Method),
		log.String("path", c.Request.URL.Path),
		log.Any("panic", recovered),
	)
	c.AbortWithStatusJSON(http.StatusOK, gin.H{
		"code":    http.StatusInternalServerError,
		"message": "系统异常，请稍后重试",
		"data":    nil,
	})
}
