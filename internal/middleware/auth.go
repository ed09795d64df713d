package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TenantAuthenticator はトークンの subject が有効なテナントかどうかを確認します。
type TenantAuthenticator interface {
	Authenticate(ctx context.Context, tenantID uuid.UUID) error
}

// TenantAuthenticatorFunc は関数を TenantAuthenticator として扱うためのアダプタです。
type TenantAuthenticatorFunc func(ctx context.Context, tenantID uuid.UUID) error

func (f TenantAuthenticatorFunc) Authenticate(ctx context.Context, tenantID uuid.UUID) error {
	return f(ctx, tenantID)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
// sub クレームにテナントIDを持つ HS256 トークンを受け付けます。
func JWTAuthMiddleware(cfg *config.Config, authenticator TenantAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrForbidden))
				return
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden))
				return
			}

			claims := &jwt.RegisteredClaims{}
			_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				msg := "トークンが無効です。"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "トークンの有効期限が切れています。"
				}
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", msg, "", model.ErrForbidden))
				return
			}

			tenantID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンのテナント情報が不正です。", "", model.ErrForbidden))
				return
			}

			if authenticator != nil {
				if err := authenticator.Authenticate(r.Context(), tenantID); err != nil {
					logger.Warn("JWT auth failed: tenant rejected", "tenant_id", tenantID, "error", err)
					webutil.HandleError(w, logger, err)
					return
				}
			}

			ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
			ctx = WithLogger(ctx, logger.With("tenant_id", tenantID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTenantIDFromContext は認証ミドルウェアが設定したテナントIDを取り出します。
func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.TenantIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからテナント情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}

// WithTenantID はテナントIDを格納したコンテキストを返します。
func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.TenantIDKey, tenantID)
}
