package main

import (
	"Folio/internal/api/config"
	"Folio/internal/pkg/cron"
	"Folio/internal/pkg/database"
	"Folio/internal/pkg/logger"
	"Folio/internal/pkg/minio"
	"Folio/internal/pkg/redis"
	"Folio/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Error("App exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("App exited successfully.")
}

func run() error {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Logstash)

	// 数据库连接
	db, err := database.NewGormDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("create database connection: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	// Redis 连接，登记待引用的上传文件
	rdb, err := redis.InitRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("create redis connection: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	// MinIO 连接
	store, err := minio.Init(cfg.MinIO)
	if err != nil {
		return fmt.Errorf("initialize minio: %w", err)
	}

	// 依赖注入
	app, err := wire.BuildApplication(db, store, redis.NewMediaTempRegistry(rdb), cfg)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if err = cron.InitCron(app.CronMgr); err != nil {
		return fmt.Errorf("start cron jobs: %w", err)
	}
	g.Go(func() error {
		<-ctx.Done()
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
