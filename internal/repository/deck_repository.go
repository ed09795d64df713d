//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckRepository interface {
	Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, deckID uuid.UUID) (*model.Deck, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Deck, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID) error
	CheckNameExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, name string, excludeDeckID *uuid.UUID) (bool, error)
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(deck)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"tenant_id", deck.TenantID.String(),
			"name", deck.Name,
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, deckID uuid.UUID) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck
	result := db.WithContext(ctx).Where("tenant_id = ? AND deck_id = ?", tenantID, deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByID: %w", result.Error)
	}

	counts, err := r.countFlashcards(ctx, db, tenantID, []uuid.UUID{deckID})
	if err != nil {
		return nil, err
	}
	deck.FlashcardCount = counts[deckID]
	return &deck, nil
}

// FindByTenant はテナントのデッキを作成日時の新しい順に返します。FlashcardCount も埋めます。
func (r *gormDeckRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var decks []*model.Deck
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Order("deck_id").Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding decks by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByTenant: %w", result.Error)
	}
	if len(decks) == 0 {
		return decks, nil
	}

	ids := make([]uuid.UUID, 0, len(decks))
	for _, d := range decks {
		ids = append(ids, d.DeckID)
	}
	counts, err := r.countFlashcards(ctx, db, tenantID, ids)
	if err != nil {
		return nil, err
	}
	for _, d := range decks {
		d.FlashcardCount = counts[d.DeckID]
	}
	return decks, nil
}

type deckCount struct {
	DeckID uuid.UUID
	Count  int64
}

func (r *gormDeckRepository) countFlashcards(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, deckIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []deckCount
	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Select("deck_id, COUNT(*) AS count").
		Where("tenant_id = ? AND deck_id IN ?", tenantID, deckIDs).
		Group("deck_id").
		Scan(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting flashcards per deck",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.countFlashcards: %w", result.Error)
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.DeckID] = row.Count
	}
	return counts, nil
}

func (r *gormDeckRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Deck{}).Where("tenant_id = ? AND deck_id = ?", tenantID, deckID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating deck in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND deck_id = ?", tenantID, deckID).Delete(&model.Deck{})
	if result.Error != nil {
		logger.Error("Error deleting deck in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) CheckNameExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, name string, excludeDeckID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Deck{}).Where("tenant_id = ? AND name = ?", tenantID, name)
	if excludeDeckID != nil {
		query = query.Where("deck_id != ?", *excludeDeckID)
	}
	if result := query.Count(&count); result.Error != nil {
		logger.Error("Error checking deck name existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"name", name,
		)
		return false, fmt.Errorf("gormDeckRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}
