//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore
// internal/service/deck_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckService interface {
	CreateDeck(ctx context.Context, tenantID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error)
	GetDeck(ctx context.Context, tenantID, deckID uuid.UUID) (*model.Deck, error)
	ListDecks(ctx context.Context, tenantID uuid.UUID) ([]*model.Deck, error)
	UpdateDeck(ctx context.Context, tenantID, deckID uuid.UUID, req *model.UpdateDeckRequest) (*model.Deck, error)
	DeleteDeck(ctx context.Context, tenantID, deckID uuid.UUID) error
}

type deckService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
	cardRepo repository.FlashcardRepository
}

func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository) DeckService {
	return &deckService{
		db:       db,
		deckRepo: deckRepo,
		cardRepo: cardRepo,
	}
}

func deckNotFound() *model.AppError {
	return model.NewAppError("DECK_NOT_FOUND", "デッキが見つかりません。", "deck_id", model.ErrNotFound)
}

func deckNameConflict() *model.AppError {
	return model.NewAppError("DECK_NAME_CONFLICT", "同じ名前のデッキが既に存在します。", "name", model.ErrConflict)
}

func (s *deckService) CreateDeck(ctx context.Context, tenantID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前は必須項目です。", "name", model.ErrInvalidInput)
	}

	deck := &model.Deck{
		DeckID:      uuid.New(),
		TenantID:    tenantID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.deckRepo.CheckNameExists(ctx, tx, tenantID, name, nil)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ名の確認中にエラーが発生しました。", "", err)
		}
		if exists {
			return deckNameConflict()
		}
		if err := s.deckRepo.Create(ctx, tx, deck); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return deckNameConflict()
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Deck created", "deck_id", deck.DeckID)
	return deck, nil
}

func (s *deckService) GetDeck(ctx context.Context, tenantID, deckID uuid.UUID) (*model.Deck, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, tenantID, deckID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, deckNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの取得に失敗しました。", "", err)
	}
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, tenantID uuid.UUID) ([]*model.Deck, error) {
	decks, err := s.deckRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ一覧の取得に失敗しました。", "", err)
	}
	if decks == nil {
		decks = []*model.Deck{}
	}
	return decks, nil
}

func (s *deckService) UpdateDeck(ctx context.Context, tenantID, deckID uuid.UUID, req *model.UpdateDeckRequest) (*model.Deck, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前は必須項目です。", "name", model.ErrInvalidInput)
	}

	var updated *model.Deck
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deck, err := s.deckRepo.FindByID(ctx, tx, tenantID, deckID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return deckNotFound()
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの取得に失敗しました。", "", err)
		}

		if name != deck.Name {
			exists, err := s.deckRepo.CheckNameExists(ctx, tx, tenantID, name, &deckID)
			if err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ名の確認中にエラーが発生しました。", "", err)
			}
			if exists {
				return deckNameConflict()
			}
		}

		description := strings.TrimSpace(req.Description)
		updates := map[string]interface{}{
			"name":        name,
			"description": description,
		}
		if err := s.deckRepo.Update(ctx, tx, tenantID, deckID, updates); err != nil {
			switch {
			case errors.Is(err, model.ErrNotFound):
				return deckNotFound()
			case errors.Is(err, model.ErrConflict):
				return deckNameConflict()
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの更新に失敗しました。", "", err)
		}

		deck.Name = name
		deck.Description = description
		updated = deck
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteDeck はデッキと、そのデッキに属するカードをまとめて論理削除します。
func (s *deckService) DeleteDeck(ctx context.Context, tenantID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.Delete(ctx, tx, tenantID, deckID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return deckNotFound()
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの削除に失敗しました。", "", err)
		}
		n, err := s.cardRepo.DeleteByDeck(ctx, tx, tenantID, deckID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ内のカードの削除に失敗しました。", "", err)
		}
		logger.Info("Deck deleted", "deck_id", deckID, "deleted_cards", n)
		return nil
	})
}
