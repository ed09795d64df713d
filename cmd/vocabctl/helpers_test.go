package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv は設定ファイルを読まずにインメモリ sqlite へつなぐ CLI 環境です。
type testEnv struct {
	db  *gorm.DB
	now time.Time
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.Open(sqlite.Open(dsn), logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return &testEnv{db: db, now: now}
}

// run はコマンドを実行し標準出力を返します。DB 接続はテスト間で共有するため PersistentPostRun で閉じません。
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var configFlag string
	var verboseFlag bool
	cctx := newCommandContext(&configFlag, &verboseFlag)
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cctx.cfg = cfg
	cctx.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if e.db != nil {
		cctx.openDB = func(*config.Config, *slog.Logger) (*gorm.DB, error) {
			return e.db, nil
		}
	}
	cctx.now = func() time.Time { return e.now }

	cmd := newRootCommandWithContext(cctx, &configFlag, &verboseFlag)
	cmd.PersistentPostRun = nil
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}
