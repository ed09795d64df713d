// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/handlers"
	"go_vocab_srs/internal/repository"
	"go_vocab_srs/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			slog.Error("Error running auto migration", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Auto migration completed")
	}

	// Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	deckRepo := repository.NewGormDeckRepository()
	cardRepo := repository.NewGormFlashcardRepository()

	tenantService := service.NewTenantService(db, tenantRepo)
	deckService := service.NewDeckService(db, deckRepo, cardRepo)
	flashcardService := service.NewFlashcardService(db, deckRepo, cardRepo, cfg, nil)
	reviewService := service.NewReviewService(db, cardRepo, cfg, nil)

	router := handlers.NewRouter(cfg, logger, handlers.Handlers{
		Tenant:    handlers.NewTenantHandler(tenantService),
		Deck:      handlers.NewDeckHandler(deckService),
		Flashcard: handlers.NewFlashcardHandler(flashcardService),
		Review:    handlers.NewReviewHandler(reviewService),
		Ping:      sqlDB.PingContext,
	}, tenantService)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルで slog ロガーを作ります。APP_ENV=dev の場合は tint で色付き出力します。
func newLogger(level, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
