//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository"
	"go_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	GetDueCards(ctx context.Context, tenantID uuid.UUID, q model.DueCardsQuery) (*model.DueCardsResponse, error)
	CountDueCards(ctx context.Context, tenantID uuid.UUID, deckID *uuid.UUID) (int, error)
	SubmitReview(ctx context.Context, tenantID, cardID uuid.UUID, rating srs.Rating) (*model.ReviewResultResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	cfg      *config.Config
	now      Clock
}

func NewReviewService(db *gorm.DB, cardRepo repository.FlashcardRepository, cfg *config.Config, clock Clock) ReviewService {
	return &reviewService{
		db:       db,
		cardRepo: cardRepo,
		cfg:      cfg,
		now:      clockOrDefault(clock),
	}
}

// selectDue は期限切れのカードを読み込み、srs.SelectDue で並べ替えとページングを行います。
func (s *reviewService) selectDue(ctx context.Context, tenantID uuid.UUID, deckID *uuid.UUID, limit, offset int) (srs.DuePage, map[uuid.UUID]*model.Flashcard, error) {
	now := s.now()
	cards, err := s.cardRepo.FindDueCandidates(ctx, s.db, tenantID, deckID, now)
	if err != nil {
		return srs.DuePage{}, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習カードの取得に失敗しました。", "", err)
	}

	byID := make(map[uuid.UUID]*model.Flashcard, len(cards))
	candidates := make([]srs.Candidate, 0, len(cards))
	for _, c := range cards {
		byID[c.CardID] = c
		candidates = append(candidates, srs.Candidate{
			ID:        c.CardID,
			Scope:     c.DeckID,
			State:     c.Review.ToState(),
			UpdatedAt: c.UpdatedAt,
		})
	}

	q := srs.DueQuery{ReferenceInstant: now, Limit: limit, Offset: offset}
	if deckID != nil {
		q.Scope = srs.InScope(*deckID)
	}
	page, err := srs.SelectDue(candidates, q)
	if err != nil {
		return srs.DuePage{}, nil, model.NewAppError("INVALID_PAGINATION", "ページング指定が正しくありません。", "",
			fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
	}
	return page, byID, nil
}

func (s *reviewService) GetDueCards(ctx context.Context, tenantID uuid.UUID, q model.DueCardsQuery) (*model.DueCardsResponse, error) {
	logger := middleware.GetLogger(ctx)

	limit, offset, err := resolvePage(q.Limit, q.Offset, s.cfg.App.ReviewLimit, s.cfg.App.MaxPageSize)
	if err != nil {
		return nil, err
	}

	page, byID, err := s.selectDue(ctx, tenantID, q.DeckID, limit, offset)
	if err != nil {
		return nil, err
	}

	cards := make([]*model.Flashcard, 0, len(page.IDs))
	for _, id := range page.IDs {
		cards = append(cards, byID[id])
	}

	logger.Info("Due cards selected", "returned", len(cards), "total", page.Total)
	return &model.DueCardsResponse{
		Cards: cards,
		Pagination: model.Pagination{
			Total:   int64(page.Total),
			Limit:   limit,
			Offset:  offset,
			HasMore: page.HasMore,
		},
	}, nil
}

func (s *reviewService) CountDueCards(ctx context.Context, tenantID uuid.UUID, deckID *uuid.UUID) (int, error) {
	page, _, err := s.selectDue(ctx, tenantID, deckID, 0, 0)
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}

// SubmitReview は評価を適用して次回の復習日時を決めます。
// 読み込みから書き込みまでを 1 トランザクションで行い、バージョン競合時は全体をやり直します。
func (s *reviewService) SubmitReview(ctx context.Context, tenantID, cardID uuid.UUID, rating srs.Rating) (*model.ReviewResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("card_id", cardID)

	if !rating.IsValid() {
		return nil, model.NewAppError("INVALID_RATING", "評価は again / hard / good / easy のいずれかで指定してください。", "rating",
			fmt.Errorf("%w: %w", model.ErrInvalidInput, srs.ErrInvalidRating))
	}

	var result *model.ReviewResultResponse
	err := withConflictRetry(ctx, s.cfg.App.ReviewRetryLimit, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			card, err := s.cardRepo.FindByID(ctx, tx, tenantID, cardID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return cardNotFound()
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
			}

			prev := card.Review.ToState()
			next, err := srs.Transition(prev, rating, s.now())
			if err != nil {
				return model.NewAppError("INVALID_RATING", "評価が正しくありません。", "rating", fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
			}

			version := card.Review.Version
			if err := s.cardRepo.UpdateReviewState(ctx, tx, tenantID, cardID, model.ReviewDataFromState(next, version), version); err != nil {
				return err
			}

			card.Review = model.ReviewDataFromState(next, version+1)
			result = &model.ReviewResultResponse{
				Card: card,
				SRSInfo: model.SRSInfo{
					Rating:         rating,
					PreviousValues: prev,
					NewValues:      next,
				},
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Review submission kept conflicting", "attempts", s.cfg.App.ReviewRetryLimit)
			return nil, model.NewAppError("REVIEW_CONFLICT", "カードが同時に更新されました。もう一度お試しください。", "", err)
		}
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習結果の保存に失敗しました。", "", err)
	}

	logger.Info("Review submitted",
		"rating", rating.String(),
		"interval", result.SRSInfo.NewValues.Interval,
		"next_review", result.SRSInfo.NewValues.NextReview,
	)
	return result, nil
}
