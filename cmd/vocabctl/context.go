package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/repository"

	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

// commandContext はサブコマンド間で共有する設定・ロガー・DB 接続を遅延初期化します。
type commandContext struct {
	configDir *string
	verbose   *bool

	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB

	openDB func(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error)
	now    func() time.Time
}

func newCommandContext(configDir *string, verbose *bool) *commandContext {
	return &commandContext{
		configDir: configDir,
		verbose:   verbose,
		openDB: func(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
			return repository.NewDB(cfg.Database.URL, logger)
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	dir := "configs"
	if c.configDir != nil && *c.configDir != "" {
		dir = *c.configDir
	}
	if err := config.LoadConfig(dir); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = &config.Cfg
	return c.cfg, nil
}

func (c *commandContext) ensureLogger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	level := slog.LevelWarn
	if c.verbose != nil && *c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level, TimeFormat: time.Kitchen}))
	return c.logger
}

func (c *commandContext) ensureDB() (*gorm.DB, error) {
	if c.db != nil {
		return c.db, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	db, err := c.openDB(cfg, c.ensureLogger())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	c.db = db
	return db, nil
}

// withLogger はサービス層が GetLogger で取り出せるようにロガーを載せたコンテキストを返します。
func (c *commandContext) withLogger(ctx context.Context) context.Context {
	return middleware.WithLogger(ctx, c.ensureLogger())
}

func (c *commandContext) close() {
	if c.db == nil {
		return
	}
	if sqlDB, err := c.db.DB(); err == nil {
		sqlDB.Close()
	}
	c.db = nil
}
