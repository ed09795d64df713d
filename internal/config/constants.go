// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-srs"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultAppReviewLimit   = 20
	DefaultMaxPageSize      = 100
	DefaultReviewRetryLimit = 3
	DefaultReviewRateLimit  = 120
	DefaultAuthEnabled      = true
)
