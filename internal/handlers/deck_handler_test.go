package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go_vocab_srs/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeckHandler_TenantHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"ヘッダーなし", ""},
		{"UUID でない", "tenant-1"},
		{"nil UUID", uuid.Nil.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rr := s.doAs(t, tt.header, http.MethodGet, "/api/v1/decks", nil)
			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}
}

func TestDeckHandler_CreateDeck(t *testing.T) {
	s := newTestServer(t)
	deck := &model.Deck{DeckID: uuid.New(), Name: "TOEIC"}
	s.decks.On("CreateDeck", mock.Anything, s.tenantID, &model.CreateDeckRequest{Name: "TOEIC", Description: "頻出"}).
		Return(deck, nil).Once()

	rr := s.do(t, http.MethodPost, "/api/v1/decks", map[string]string{"name": "TOEIC", "description": "頻出"})

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var got model.Deck
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, deck.DeckID, got.DeckID)
}

func TestDeckHandler_CreateDeck_NameRequired(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/v1/decks", map[string]string{"description": "x"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	detail := decodeError(t, rr)
	assert.Equal(t, "name", detail.Field)
	assert.Equal(t, "名前は必須項目です。", detail.Message)
}

func TestDeckHandler_ListDecks_EmptyIsArray(t *testing.T) {
	s := newTestServer(t)
	s.decks.On("ListDecks", mock.Anything, s.tenantID).Return(nil, nil).Once()

	rr := s.do(t, http.MethodGet, "/api/v1/decks", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestDeckHandler_GetDeck(t *testing.T) {
	t.Run("存在しないデッキは 404", func(t *testing.T) {
		s := newTestServer(t)
		deckID := uuid.New()
		s.decks.On("GetDeck", mock.Anything, s.tenantID, deckID).
			Return(nil, model.NewAppError("DECK_NOT_FOUND", "デッキが見つかりません。", "deck_id", model.ErrNotFound)).Once()

		rr := s.do(t, http.MethodGet, "/api/v1/decks/"+deckID.String(), nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "DECK_NOT_FOUND", decodeError(t, rr).Code)
	})

	t.Run("不正なIDは 400", func(t *testing.T) {
		s := newTestServer(t)

		rr := s.do(t, http.MethodGet, "/api/v1/decks/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rr).Code)
	})

	t.Run("想定外のエラーは 500 で詳細を隠す", func(t *testing.T) {
		s := newTestServer(t)
		deckID := uuid.New()
		s.decks.On("GetDeck", mock.Anything, s.tenantID, deckID).Return(nil, errors.New("connection reset")).Once()

		rr := s.do(t, http.MethodGet, "/api/v1/decks/"+deckID.String(), nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}

func TestDeckHandler_UpdateDeck_Conflict(t *testing.T) {
	s := newTestServer(t)
	deckID := uuid.New()
	s.decks.On("UpdateDeck", mock.Anything, s.tenantID, deckID, &model.UpdateDeckRequest{Name: "英検"}).
		Return(nil, model.NewAppError("DECK_NAME_CONFLICT", "同じ名前のデッキが既に存在します。", "name", model.ErrConflict)).Once()

	rr := s.do(t, http.MethodPut, "/api/v1/decks/"+deckID.String(), map[string]string{"name": "英検"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "name", decodeError(t, rr).Field)
}

func TestDeckHandler_DeleteDeck(t *testing.T) {
	s := newTestServer(t)
	deckID := uuid.New()
	s.decks.On("DeleteDeck", mock.Anything, s.tenantID, deckID).Return(nil).Once()

	rr := s.do(t, http.MethodDelete, "/api/v1/decks/"+deckID.String(), nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
