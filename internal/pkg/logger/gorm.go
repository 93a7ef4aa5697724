package logger

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowSQLThreshold = 200 * time.Millisecond

// SlogGormLogger 将 SQL 执行日志转发到 slog
type SlogGormLogger struct {
	LogLevel logger.LogLevel
}

func NewGormLogger() *SlogGormLogger {
	return &SlogGormLogger{LogLevel: logger.Info}
}

func (l *SlogGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &SlogGormLogger{LogLevel: level}
}

func (l *SlogGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		log.InfoContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		log.WarnContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		log.ErrorContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	operation := "Query"
	if i := strings.IndexByte(sql, ' '); i > 0 {
		operation = strings.ToUpper(sql[:i])
	}
	msg := "SQL " + operation

	fields := []any{
		log.String("sql", sql),
		log.Duration("latency", elapsed),
		log.Int64("rows", rows),
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) && l.LogLevel >= logger.Warn:
		// slug 冲突由业务层转成校验错误
		log.WarnContext(ctx, msg+" Conflict", append(fields, log.Any("err", err))...)
	case err != nil && !errors.Is(err, logger.ErrRecordNotFound) && l.LogLevel >= logger.Error:
		log.ErrorContext(ctx, msg+" Error", append(fields, log.Any("err", err))...)
	case elapsed > slowSQLThreshold && l.LogLevel >= logger.Warn:
		log.WarnContext(ctx, msg+" Slow", fields...)
	case l.LogLevel >= logger.Info:
		log.InfoContext(ctx, msg, fields...)
	}
}
