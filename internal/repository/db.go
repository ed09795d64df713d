package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_vocab_srs/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は PostgreSQL に接続し、コネクションプールを設定した *gorm.DB を返します。
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("repository.NewDB: database url is empty")
	}

	db, err := Open(postgres.Open(databaseURL), appLogger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")
	return db, nil
}

// Open は任意のダイアレクタで GORM を開きます。ログは slog-gorm 経由で appLogger に流します。
// テストでは sqlite のダイアレクタを渡して使います。
func Open(dialector gorm.Dialector, appLogger *slog.Logger) (*gorm.DB, error) {
	// APP_ENV=dev のときだけ SQL を全件出力する
	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}
	return db, nil
}

// Migrate はテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Tenant{}, &model.Deck{}, &model.Flashcard{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
