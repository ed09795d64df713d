package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリ sqlite を用意し、マイグレーションまで行います。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.Open(sqlite.Open(dsn), discardLogger())
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testContext はログを捨てるロガー入りのコンテキストを返します。
func testContext() context.Context {
	return middleware.WithLogger(context.Background(), discardLogger())
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ReviewLimit = 20
	cfg.App.MaxPageSize = 100
	cfg.App.ReviewRetryLimit = 3
	cfg.ApplyDefaults()
	return cfg
}

// fixedClock は常に t を返す Clock です。
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func intPtr(n int) *int { return &n }
