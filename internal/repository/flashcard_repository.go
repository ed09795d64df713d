//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.Flashcard, error)
	FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, cardIDs []uuid.UUID) ([]*model.Flashcard, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, deckID *uuid.UUID, limit, offset int) ([]*model.Flashcard, int64, error)
	FindDueCandidates(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, deckID *uuid.UUID, at time.Time) ([]*model.Flashcard, error)
	UpdateContent(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	UpdateReviewState(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID, review model.ReviewData, expectedVersion int64) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) error
	DeleteByDeck(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID) (int64, error)
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating flashcard in DB",
			"error", result.Error,
			"tenant_id", card.TenantID.String(),
			"deck_id", card.DeckID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard
	result := db.WithContext(ctx).Where("tenant_id = ? AND card_id = ?", tenantID, cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// FindByIDs は cardIDs のカードを返します。順序は保証しません。
func (r *gormFlashcardRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, cardIDs []uuid.UUID) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	if len(cardIDs) == 0 {
		return cards, nil
	}
	result := db.WithContext(ctx).Where("tenant_id = ? AND card_id IN ?", tenantID, cardIDs).Find(&cards)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding flashcards by IDs in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"count", len(cardIDs),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByIDs: %w", result.Error)
	}
	return cards, nil
}

// FindByTenant は作成日時の新しい順にカードを返します。第2戻り値は limit/offset 適用前の件数です。
func (r *gormFlashcardRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, deckID *uuid.UUID, limit, offset int) ([]*model.Flashcard, int64, error) {
	logger := middleware.GetLogger(ctx)

	base := db.WithContext(ctx).Model(&model.Flashcard{}).Where("tenant_id = ?", tenantID)
	if deckID != nil {
		base = base.Where("deck_id = ?", *deckID)
	}

	var total int64
	if result := base.Session(&gorm.Session{}).Count(&total); result.Error != nil {
		logger.Error("Error counting flashcards in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, 0, fmt.Errorf("gormFlashcardRepository.FindByTenant: %w", result.Error)
	}

	cards := []*model.Flashcard{}
	if limit == 0 || int64(offset) >= total {
		return cards, total, nil
	}

	result := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("card_id").
		Limit(limit).
		Offset(offset).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, 0, fmt.Errorf("gormFlashcardRepository.FindByTenant: %w", result.Error)
	}
	return cards, total, nil
}

// FindDueCandidates は at 時点で復習期限が来ているカードを返します。
// 並び順とページングは呼び出し側 (srs.SelectDue) で決めるため、ここでは絞り込みだけを行います。
func (r *gormFlashcardRepository) FindDueCandidates(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, deckID *uuid.UUID, at time.Time) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard

	query := db.WithContext(ctx).Where("tenant_id = ? AND review_next_review <= ?", tenantID, at)
	if deckID != nil {
		query = query.Where("deck_id = ?", *deckID)
	}
	if result := query.Find(&cards); result.Error != nil {
		logger.Error("Error finding due flashcards in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindDueCandidates: %w", result.Error)
	}
	return cards, nil
}

// UpdateContent はカードの内容 (デッキ、表裏、読み、例文、タグ) だけを更新します。復習状態には触れません。
func (r *gormFlashcardRepository) UpdateContent(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	card.UpdatedAt = time.Now().UTC()
	result := tx.WithContext(ctx).Model(&model.Flashcard{}).
		Where("tenant_id = ? AND card_id = ?", card.TenantID, card.CardID).
		Select("deck_id", "front", "back", "reading", "example", "tags", "updated_at").
		Updates(card)
	if result.Error != nil {
		logger.Error("Error updating flashcard in DB",
			"error", result.Error,
			"tenant_id", card.TenantID.String(),
			"card_id", card.CardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.UpdateContent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateReviewState は review_version が expectedVersion と一致する場合だけ復習状態を書き込み、
// バージョンを 1 進めます。一致しない (他のリクエストが先に更新した) 場合は model.ErrConflict を返します。
func (r *gormFlashcardRepository) UpdateReviewState(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID, review model.ReviewData, expectedVersion int64) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Flashcard{}).
		Where("tenant_id = ? AND card_id = ? AND review_version = ?", tenantID, cardID, expectedVersion).
		Updates(map[string]interface{}{
			"review_ease_factor":   review.EaseFactor,
			"review_interval":      review.Interval,
			"review_repetitions":   review.Repetitions,
			"review_next_review":   review.NextReview,
			"review_last_reviewed": review.LastReviewed,
			"review_version":       expectedVersion + 1,
		})
	if result.Error != nil {
		logger.Error("Error updating review state in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.UpdateReviewState: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Review state version mismatch",
			"card_id", cardID.String(),
			"expected_version", expectedVersion,
		)
		return model.ErrConflict
	}
	return nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND card_id = ?", tenantID, cardID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByDeck はデッキに属するカードをまとめて論理削除し、削除件数を返します。
func (r *gormFlashcardRepository) DeleteByDeck(ctx context.Context, tx *gorm.DB, tenantID, deckID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND deck_id = ?", tenantID, deckID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcards by deck in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"deck_id", deckID.String(),
		)
		return 0, fmt.Errorf("gormFlashcardRepository.DeleteByDeck: %w", result.Error)
	}
	return result.RowsAffected, nil
}
