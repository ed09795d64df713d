// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	ReviewLimit      int `mapstructure:"review_limit"`       // 復習キューの既定の取得件数
	MaxPageSize      int `mapstructure:"max_page_size"`      // 一覧系APIの limit 上限
	ReviewRetryLimit int `mapstructure:"review_retry_limit"` // 同時更新競合時の再試行回数
	ReviewRateLimit  int `mapstructure:"review_rate_limit"`  // テナントごとの復習送信数 / 分
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

var Cfg Config

// LoadConfig は path (と カレントディレクトリ) の config.yaml と環境変数から設定を読み込み、Cfg に格納します。
func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_APP_REVIEW_LIMIT のように接頭辞をつけて上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("log.level", DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	cfg.ApplyDefaults()

	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Auth.Enabled && cfg.JWT.SecretKey == "" {
		return errors.New("config: auth is enabled but jwt.secret_key is empty")
	}

	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// ApplyDefaults は未設定・不正な値を既定値で埋めます。
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.App.ReviewLimit <= 0 {
		c.App.ReviewLimit = DefaultAppReviewLimit
	}
	if c.App.MaxPageSize <= 0 {
		c.App.MaxPageSize = DefaultMaxPageSize
	}
	if c.App.ReviewLimit > c.App.MaxPageSize {
		c.App.ReviewLimit = c.App.MaxPageSize
	}
	if c.App.ReviewRetryLimit <= 0 {
		c.App.ReviewRetryLimit = DefaultReviewRetryLimit
	}
	if c.App.ReviewRateLimit <= 0 {
		c.App.ReviewRateLimit = DefaultReviewRateLimit
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID"}
	}
}
