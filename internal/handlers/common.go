package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

// requireTenant はコンテキストからテナントIDを取り出します。失敗時はエラーレスポンスを書き込み false を返します。
func requireTenant(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return uuid.Nil, false
	}
	return tenantID, true
}

// handlerLogger はリクエストのロガーにハンドラ名を付けたものを返します。
func handlerLogger(r *http.Request, name string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", name))
}
