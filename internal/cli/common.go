package cli

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/repository"
	"admit-desk/backend/pkg/database"
	applogger "admit-desk/backend/pkg/logger"
)

// env 命令运行所需的基础设施
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// loadConfig 加载配置与日志
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, logger, nil
}

// openEnv 加载配置并连接数据库，调用方负责 close
func openEnv() (*env, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}
	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) repo() *repository.Repository {
	return repository.NewRepository(e.db)
}

func (e *env) sqlDB() (*sql.DB, error) {
	sqlDB, err := e.db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	return sqlDB, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = e.logger.Sync()
}
