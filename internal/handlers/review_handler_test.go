package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_GetDueCards(t *testing.T) {
	s := newTestServer(t)
	deckID := uuid.New()
	due := &model.DueCardsResponse{
		Cards:      []*model.Flashcard{{CardID: uuid.New(), Front: "apple"}},
		Pagination: model.Pagination{Total: 3, Limit: 1, Offset: 0, HasMore: true},
	}
	s.reviews.On("GetDueCards", mock.Anything, s.tenantID, mock.MatchedBy(func(q model.DueCardsQuery) bool {
		return q.DeckID != nil && *q.DeckID == deckID && q.Limit != nil && *q.Limit == 1 && q.Offset == 0
	})).Return(due, nil).Once()

	rr := s.do(t, http.MethodGet, "/api/v1/reviews?deck_id="+deckID.String()+"&limit=1", nil)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got model.DueCardsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Cards, 1)
	assert.True(t, got.Pagination.HasMore)
	assert.EqualValues(t, 3, got.Pagination.Total)
}

func TestReviewHandler_GetDueCards_InvalidPagination(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/api/v1/reviews?limit=-5", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "limit", decodeError(t, rr).Field)
}

func TestReviewHandler_CountDueCards(t *testing.T) {
	s := newTestServer(t)
	s.reviews.On("CountDueCards", mock.Anything, s.tenantID, (*uuid.UUID)(nil)).Return(7, nil).Once()

	rr := s.do(t, http.MethodGet, "/api/v1/reviews/count", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":7}`, rr.Body.String())
}

func TestReviewHandler_SubmitReview(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	cardID := uuid.New()

	tests := []struct {
		name       string
		body       interface{}
		setup      func(s *testServer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系",
			body: map[string]string{"rating": "good"},
			setup: func(s *testServer) {
				prev := srs.NewState(now)
				next, err := srs.Transition(prev, srs.Good, now)
				require.NoError(t, err)
				s.reviews.On("SubmitReview", mock.Anything, s.tenantID, cardID, srs.Good).Return(&model.ReviewResultResponse{
					Card:    &model.Flashcard{CardID: cardID, Review: model.ReviewDataFromState(next, 1)},
					SRSInfo: model.SRSInfo{Rating: srs.Good, PreviousValues: prev, NewValues: next},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "未知の評価は 400",
			body:       map[string]string{"rating": "perfect"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RATING",
		},
		{
			name:       "大文字の評価は受け付けない",
			body:       map[string]string{"rating": "Good"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RATING",
		},
		{
			name:       "評価なしは 400",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "存在しないカードは 404",
			body: map[string]string{"rating": "again"},
			setup: func(s *testServer) {
				s.reviews.On("SubmitReview", mock.Anything, s.tenantID, cardID, srs.Again).
					Return(nil, model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "card_id", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "CARD_NOT_FOUND",
		},
		{
			name: "同時更新の競合は 409",
			body: map[string]string{"rating": "hard"},
			setup: func(s *testServer) {
				s.reviews.On("SubmitReview", mock.Anything, s.tenantID, cardID, srs.Hard).
					Return(nil, model.NewAppError("REVIEW_CONFLICT", "カードが同時に更新されました。もう一度お試しください。", "", model.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "REVIEW_CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			if tt.setup != nil {
				tt.setup(s)
			}

			rr := s.do(t, http.MethodPost, "/api/v1/reviews/"+cardID.String(), tt.body)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
			} else {
				assert.Contains(t, rr.Body.String(), `"srsInfo"`)
			}
		})
	}
}

func TestReviewHandler_SubmitReview_RateLimited(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.App.ReviewRateLimit = 1 })
	cardID := uuid.New()
	s.reviews.On("SubmitReview", mock.Anything, s.tenantID, cardID, srs.Easy).
		Return(&model.ReviewResultResponse{
			Card:    &model.Flashcard{CardID: cardID},
			SRSInfo: model.SRSInfo{Rating: srs.Easy},
		}, nil).Once()

	first := s.do(t, http.MethodPost, "/api/v1/reviews/"+cardID.String(), map[string]string{"rating": "easy"})
	second := s.do(t, http.MethodPost, "/api/v1/reviews/"+cardID.String(), map[string]string{"rating": "easy"})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", decodeError(t, second).Code)

	// 別テナントは影響を受けない
	other := uuid.New()
	s.reviews.On("SubmitReview", mock.Anything, other, cardID, srs.Easy).
		Return(&model.ReviewResultResponse{
			Card:    &model.Flashcard{CardID: cardID},
			SRSInfo: model.SRSInfo{Rating: srs.Easy},
		}, nil).Once()
	third := s.doAs(t, other.String(), http.MethodPost, "/api/v1/reviews/"+cardID.String(), map[string]string{"rating": "easy"})
	assert.Equal(t, http.StatusOK, third.Code)
}
