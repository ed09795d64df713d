// internal/handlers/deck_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/service"
	"go_vocab_srs/internal/webutil"
)

type DeckHandler struct {
	service service.DeckService
}

func NewDeckHandler(s service.DeckService) *DeckHandler {
	return &DeckHandler{service: s}
}

func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateDeck")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateDeckRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create deck request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), tenantID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck created successfully", slog.String("deck_id", deck.DeckID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, deck, logger)
}

func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListDecks")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}

	decks, err := h.service.ListDecks(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if decks == nil {
		decks = []*model.Deck{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, decks, logger)
}

func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetDeck")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	deckID, err := webutil.PathUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.GetDeck(r.Context(), tenantID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateDeck")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	deckID, err := webutil.PathUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateDeckRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update deck request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.UpdateDeck(r.Context(), tenantID, deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck updated successfully", slog.String("deck_id", deckID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteDeck")
	tenantID, ok := requireTenant(w, r, logger)
	if !ok {
		return
	}
	deckID, err := webutil.PathUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteDeck(r.Context(), tenantID, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck deleted successfully", slog.String("deck_id", deckID.String()))
	w.WriteHeader(http.StatusNoContent)
}
