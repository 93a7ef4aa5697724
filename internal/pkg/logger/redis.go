package logger

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	slowRedisThreshold = 100 * time.Millisecond
	maxRedisArgsLen    = 512
)

// RedisLoggerHook 记录 Redis 错误与慢命令
type RedisLoggerHook struct{}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		if err == nil && elapsed <= slowRedisThreshold {
			return nil
		}
		if errors.Is(err, redis.Nil) {
			return err
		}

		cmdName := cmd.Name()
		if err != nil && cmdName == "client" && strings.Contains(err.Error(), "setinfo") {
			return err
		}

		args := "[PROTECTED]"
		if cmdName != "auth" && cmdName != "hello" {
			args = fmt.Sprint(cmd.Args())
			if len(args) > maxRedisArgsLen {
				args = args[:maxRedisArgsLen] + "...[truncated]"
			}
		}

		fields := []any{
			log.String("command", cmdName),
			log.String("args", args),
			log.Duration("latency", elapsed),
		}
		if err != nil {
			log.ErrorContext(ctx, "Redis Error", append(fields, log.Any("err", err))...)
		} else {
			log.WarnContext(ctx, "Redis Slow", fields...)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)

		switch {
		case err != nil && !errors.Is(err, redis.Nil):
			log.ErrorContext(ctx, "Redis Pipeline Error",
				log.Int("cmd_count", len(cmds)),
				log.Duration("latency", elapsed),
				log.Any("err", err))
		case elapsed > slowRedisThreshold:
			// 只记命令名，不打印参数
			names := make([]string, 0, len(cmds))
			for _, cmd := range cmds {
				names = append(names, cmd.Name())
			}
			log.WarnContext(ctx, "Redis Pipeline Slow",
				log.String("commands", strings.Join(names, ",")),
				log.Duration("latency", elapsed))
		}
		return err
	}
}
