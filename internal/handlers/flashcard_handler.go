// internal/handlers/flashcard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/service"
	"go_vocab_srs/internal/webutil"
)

type FlashcardHandler struct {
	service service.FlashcardService
}

func NewFlashcardHandler(s service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: s}
}

// CreateFlashcard は新しいカードを作成します。作成直後のカードは復習対象です。
func (h *FlashcardHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateFlashcard")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateFlashcardRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create flashcard request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.CreateFlashcard(r.Context(), tenantID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard created successfully", slog.String("card_id", card.CardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// ListFlashcards は ?deck_id=&limit=&offset= でカード一覧を返します。
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListFlashcards")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}

	q, err := listFlashcardsQuery(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ListFlashcards(r.Context(), tenantID, q)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func listFlashcardsQuery(r *http.Request) (model.ListFlashcardsQuery, error) {
	var q model.ListFlashcardsQuery
	deckID, err := webutil.QueryUUID(r, "deck_id")
	if err != nil {
		return q, err
	}
	limit, err := webutil.QueryInt(r, "limit")
	if err != nil {
		return q, err
	}
	offset, err := webutil.QueryInt(r, "offset")
	if err != nil {
		return q, err
	}
	q.DeckID = deckID
	q.Limit = limit
	if offset != nil {
		q.Offset = *offset
	}
	return q, nil
}

func (h *FlashcardHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetFlashcard")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	cardID, err := webutil.PathUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.GetFlashcard(r.Context(), tenantID, cardID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *FlashcardHandler) PutFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutFlashcard")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	cardID, err := webutil.PathUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PutFlashcardRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid put flashcard request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.PutFlashcard(r.Context(), tenantID, cardID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard put successfully", slog.String("card_id", cardID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *FlashcardHandler) PatchFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PatchFlashcard")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	cardID, err := webutil.PathUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchFlashcardRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid patch flashcard request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.PatchFlashcard(r.Context(), tenantID, cardID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard patched successfully", slog.String("card_id", cardID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteFlashcard")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	cardID, err := webutil.PathUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteFlashcard(r.Context(), tenantID, cardID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetReview はカードの復習状態を初期化します。
func (h *FlashcardHandler) ResetReview(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ResetReview")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	cardID, err := webutil.PathUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.ResetReview(r.Context(), tenantID, cardID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}
