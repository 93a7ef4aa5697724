package database

import (
	"Folio/internal/api/config"
	"Folio/internal/model"
	"Folio/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := Open(mysql.Open(cfg.DSN))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	if cfg.AutoMigrate {
		if err = Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// Open 使用给定方言打开连接，唯一键冲突统一翻译为 gorm.ErrDuplicatedKey
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	return db, nil
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Post{}, "Authors", &model.PostAuthor{}); err != nil {
		return fmt.Errorf("failed to setup join table: %w", err)
	}
	if err := db.AutoMigrate(&model.Category{}, &model.Author{}, &model.Post{}, &model.PostAuthor{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
