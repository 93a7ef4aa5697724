package logger

import (
	"Folio/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

var (
	// LogWriter gin 访问日志输出目标
	LogWriter io.Writer = os.Stdout

	targetIndex = "logstash-folio"
	logToken    string
)

// InitLogger 初始化全局 slog，可选同步到 Logstash
func InitLogger(cfg config.LogstashConfig) {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout

	if cfg.Index != "" {
		targetIndex = cfg.Index
	}
	logToken = cfg.Token

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", targetIndex),
					log.String("log_token", logToken),
				})

			finalHandler = NewTeeHandler(hStdout, NewRemoteFilterHandler(hRemote))
			LogWriter = io.MultiWriter(os.Stdout, conn)
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
