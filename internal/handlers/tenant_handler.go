// internal/handlers/tenant_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/service"
	"go_vocab_srs/internal/webutil"
)

type TenantHandler struct {
	service service.TenantService
}

func NewTenantHandler(s service.TenantService) *TenantHandler {
	return &TenantHandler{service: s}
}

// CreateTenant は学習者 (テナント) を登録します。
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateTenant")

	var req model.CreateTenantRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create tenant request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	tenant, err := h.service.CreateTenant(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant created successfully", slog.String("tenant_id", tenant.TenantID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewTenantResponse(tenant), logger)
}
