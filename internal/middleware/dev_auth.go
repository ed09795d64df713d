// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発時用ミドルウェアです。
// X-Tenant-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのテナント存在チェックは行いません。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			logger.Warn("[DEV AUTH] X-Tenant-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDヘッダーが必要です。", "", model.ErrForbidden))
			return
		}

		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil || tenantID == uuid.Nil {
			logger.Warn("[DEV AUTH] Invalid X-Tenant-ID format", "value", tenantIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDの形式が正しくありません。", "", model.ErrForbidden))
			return
		}

		logger.Debug("[DEV AUTH] tenant set to context (no validation)", "tenant_id", tenantID)

		ctx := WithTenantID(r.Context(), tenantID)
		ctx = WithLogger(ctx, logger.With("tenant_id", tenantID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
