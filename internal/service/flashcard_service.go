//go:generate mockery --name FlashcardService --output ./mocks --outpkg mocks --case=underscore
// internal/service/flashcard_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository"
	"go_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardService interface {
	CreateFlashcard(ctx context.Context, tenantID uuid.UUID, req *model.CreateFlashcardRequest) (*model.Flashcard, error)
	GetFlashcard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Flashcard, error)
	ListFlashcards(ctx context.Context, tenantID uuid.UUID, q model.ListFlashcardsQuery) (*model.FlashcardListResponse, error)
	PutFlashcard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PutFlashcardRequest) (*model.Flashcard, error)
	PatchFlashcard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PatchFlashcardRequest) (*model.Flashcard, error)
	DeleteFlashcard(ctx context.Context, tenantID, cardID uuid.UUID) error
	ResetReview(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Flashcard, error)
}

type flashcardService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
	cardRepo repository.FlashcardRepository
	cfg      *config.Config
	now      Clock
}

func NewFlashcardService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository, cfg *config.Config, clock Clock) FlashcardService {
	return &flashcardService{
		db:       db,
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		cfg:      cfg,
		now:      clockOrDefault(clock),
	}
}

func cardNotFound() *model.AppError {
	return model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "card_id", model.ErrNotFound)
}

// ensureDeck はカードの移動先/作成先のデッキが存在するかを確認します。
func (s *flashcardService) ensureDeck(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID) error {
	if _, err := s.deckRepo.FindByID(ctx, tx, tenantID, deckID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("DECK_NOT_FOUND", "指定されたデッキが存在しません。", "deck_id", model.ErrInvalidInput)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの確認中にエラーが発生しました。", "", err)
	}
	return nil
}

func (s *flashcardService) findCard(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.Flashcard, error) {
	card, err := s.cardRepo.FindByID(ctx, db, tenantID, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, cardNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
	}
	return card, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func (s *flashcardService) CreateFlashcard(ctx context.Context, tenantID uuid.UUID, req *model.CreateFlashcardRequest) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)

	card := &model.Flashcard{
		CardID:   uuid.New(),
		TenantID: tenantID,
		DeckID:   req.DeckID,
		Front:    strings.TrimSpace(req.Front),
		Back:     strings.TrimSpace(req.Back),
		Reading:  strings.TrimSpace(req.Reading),
		Example:  strings.TrimSpace(req.Example),
		Tags:     normalizeTags(req.Tags),
		Review:   model.ReviewDataFromState(srs.NewState(s.now()), 0),
	}
	if card.Front == "" || card.Back == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "表面と裏面は必須です。", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureDeck(ctx, tx, tenantID, req.DeckID); err != nil {
			return err
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Flashcard created", "card_id", card.CardID, "deck_id", card.DeckID)
	return card, nil
}

func (s *flashcardService) GetFlashcard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Flashcard, error) {
	return s.findCard(ctx, s.db, tenantID, cardID)
}

func (s *flashcardService) ListFlashcards(ctx context.Context, tenantID uuid.UUID, q model.ListFlashcardsQuery) (*model.FlashcardListResponse, error) {
	limit, offset, err := resolvePage(q.Limit, q.Offset, s.cfg.App.MaxPageSize, s.cfg.App.MaxPageSize)
	if err != nil {
		return nil, err
	}

	cards, total, err := s.cardRepo.FindByTenant(ctx, s.db, tenantID, q.DeckID, limit, offset)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	if cards == nil {
		cards = []*model.Flashcard{}
	}

	return &model.FlashcardListResponse{
		Flashcards: cards,
		Pagination: model.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+len(cards)) < total,
		},
	}, nil
}

func (s *flashcardService) PutFlashcard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PutFlashcardRequest) (*model.Flashcard, error) {
	front := strings.TrimSpace(req.Front)
	back := strings.TrimSpace(req.Back)
	if front == "" || back == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "表面と裏面は必須です。", "", model.ErrInvalidInput)
	}

	var updated *model.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.findCard(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}
		if req.DeckID != card.DeckID {
			if err := s.ensureDeck(ctx, tx, tenantID, req.DeckID); err != nil {
				return err
			}
		}

		card.DeckID = req.DeckID
		card.Front = front
		card.Back = back
		card.Reading = strings.TrimSpace(req.Reading)
		card.Example = strings.TrimSpace(req.Example)
		card.Tags = normalizeTags(req.Tags)

		if err := s.cardRepo.UpdateContent(ctx, tx, card); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return cardNotFound()
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの更新に失敗しました。", "", err)
		}
		updated = card
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *flashcardService) PatchFlashcard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PatchFlashcardRequest) (*model.Flashcard, error) {
	var updated *model.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.findCard(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}

		changed := false
		if req.DeckID != nil && *req.DeckID != card.DeckID {
			if err := s.ensureDeck(ctx, tx, tenantID, *req.DeckID); err != nil {
				return err
			}
			card.DeckID = *req.DeckID
			changed = true
		}
		if req.Front != nil {
			front := strings.TrimSpace(*req.Front)
			if front == "" {
				return model.NewAppError("VALIDATION_ERROR", "表面は空にできません。", "front", model.ErrInvalidInput)
			}
			card.Front = front
			changed = true
		}
		if req.Back != nil {
			back := strings.TrimSpace(*req.Back)
			if back == "" {
				return model.NewAppError("VALIDATION_ERROR", "裏面は空にできません。", "back", model.ErrInvalidInput)
			}
			card.Back = back
			changed = true
		}
		if req.Reading != nil {
			card.Reading = strings.TrimSpace(*req.Reading)
			changed = true
		}
		if req.Example != nil {
			card.Example = strings.TrimSpace(*req.Example)
			changed = true
		}
		if req.Tags != nil {
			card.Tags = normalizeTags(req.Tags)
			changed = true
		}

		if changed {
			if err := s.cardRepo.UpdateContent(ctx, tx, card); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return cardNotFound()
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの更新に失敗しました。", "", err)
			}
		}
		updated = card
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *flashcardService) DeleteFlashcard(ctx context.Context, tenantID, cardID uuid.UUID) error {
	if err := s.cardRepo.Delete(ctx, s.db, tenantID, cardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return cardNotFound()
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
	}
	middleware.GetLogger(ctx).Info("Flashcard deleted", "card_id", cardID)
	return nil
}

// ResetReview は復習状態を新規カードと同じ状態に戻します。カードはすぐに復習対象になります。
func (s *flashcardService) ResetReview(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Flashcard, error) {
	var reset *model.Flashcard
	err := withConflictRetry(ctx, s.cfg.App.ReviewRetryLimit, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			card, err := s.findCard(ctx, tx, tenantID, cardID)
			if err != nil {
				return err
			}
			version := card.Review.Version
			review := model.ReviewDataFromState(srs.NewState(s.now()), version)
			if err := s.cardRepo.UpdateReviewState(ctx, tx, tenantID, cardID, review, version); err != nil {
				return err
			}
			review.Version = version + 1
			card.Review = review
			reset = card
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("REVIEW_CONFLICT", "カードが同時に更新されました。もう一度お試しください。", "", err)
		}
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態のリセットに失敗しました。", "", err)
	}
	middleware.GetLogger(ctx).Info("Review state reset", "card_id", cardID)
	return reset, nil
}
