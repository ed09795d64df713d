// internal/model/deck.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deck はフラッシュカードをまとめるデッキ (復習キューのスコープ) です
type Deck struct {
	DeckID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"deck_id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"not null;default:''" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// 集計値 (テーブルには保存しない)
	FlashcardCount int64 `gorm:"-" json:"flashcard_count"`
}

func (Deck) TableName() string {
	return "decks"
}

// デッキ作成リクエストDTO
type CreateDeckRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// デッキ更新（全体）リクエストDTO
type UpdateDeckRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}
