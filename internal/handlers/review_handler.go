// internal/handlers/review_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/service"
	"go_vocab_srs/internal/srs"
	"go_vocab_srs/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// GetDueCards は復習キューを返します (?deck_id=&limit=&offset=)。
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetDueCards")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.QueryUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	limit, err := webutil.QueryInt(r, "limit")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	offset, err := webutil.QueryInt(r, "offset")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	q := model.DueCardsQuery{DeckID: deckID, Limit: limit}
	if offset != nil {
		q.Offset = *offset
	}

	resp, err := h.service.GetDueCards(r.Context(), tenantID, q)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// CountDueCards は復習対象の件数を返します。
func (h *ReviewHandler) CountDueCards(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CountDueCards")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.QueryUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.service.CountDueCards(r.Context(), tenantID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.DueCountResponse{Count: count}, logger)
}

// SubmitReview は {"rating":"good"} を受け取り、次回の復習日時を計算して保存します。
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "SubmitReview")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	cardID, err := webutil.PathUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid submit review request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	rating, err := srs.ParseRating(req.Rating)
	if err != nil {
		logger.Warn("Invalid rating", slog.String("rating", req.Rating))
		webutil.HandleError(w, logger, model.NewAppError(
			"INVALID_RATING",
			"評価は again / hard / good / easy のいずれかで指定してください。",
			"rating",
			fmt.Errorf("%w: %w", model.ErrInvalidInput, err),
		))
		return
	}

	result, err := h.service.SubmitReview(r.Context(), tenantID, cardID, rating)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
