// internal/model/flashcard.go
package model

import (
	"time"

	"go_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard は単語カードとその復習状態を表します
type Flashcard struct {
	CardID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"card_id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	DeckID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"deck_id"`
	Front     string         `gorm:"not null" json:"front"` // 表 (単語)
	Back      string         `gorm:"not null" json:"back"`  // 裏 (意味)
	Reading   string         `gorm:"not null;default:''" json:"reading"`
	Example   string         `gorm:"not null;default:''" json:"example"`
	Tags      []string       `gorm:"type:text;serializer:json" json:"tags"`
	Review    ReviewData     `gorm:"embedded;embeddedPrefix:review_" json:"review"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// ReviewData はカードに埋め込まれる復習状態の保存形式です。
// スケジューリングの計算は srs.State で行い、ここでは列へのマッピングだけを扱います。
// Version は楽観的排他制御用で、復習結果を書き込むたびに 1 増えます。
type ReviewData struct {
	EaseFactor   float64    `gorm:"not null;default:2.5" json:"easeFactor"`
	Interval     int        `gorm:"not null;default:1" json:"interval"`
	Repetitions  int        `gorm:"not null;default:0" json:"repetitions"`
	NextReview   time.Time  `gorm:"not null;index" json:"nextReview"`
	LastReviewed *time.Time `json:"lastReviewed"`
	Version      int64      `gorm:"not null;default:0" json:"-"`
}

// ToState は保存値を srs.State に変換します。
func (r ReviewData) ToState() srs.State {
	return srs.State{
		EaseFactor:   r.EaseFactor,
		Interval:     r.Interval,
		Repetitions:  r.Repetitions,
		NextReview:   r.NextReview,
		LastReviewed: r.LastReviewed,
	}
}

// ReviewDataFromState は srs.State を保存形式に変換します。Version は引き継ぎます。
func ReviewDataFromState(s srs.State, version int64) ReviewData {
	return ReviewData{
		EaseFactor:   s.EaseFactor,
		Interval:     s.Interval,
		Repetitions:  s.Repetitions,
		NextReview:   s.NextReview,
		LastReviewed: s.LastReviewed,
		Version:      version,
	}
}

// フラッシュカード作成リクエストDTO
type CreateFlashcardRequest struct {
	DeckID  uuid.UUID `json:"deck_id" validate:"required"`
	Front   string    `json:"front" validate:"required,max=200"`
	Back    string    `json:"back" validate:"required,max=500"`
	Reading string    `json:"reading" validate:"max=100"`
	Example string    `json:"example" validate:"max=500"`
	Tags    []string  `json:"tags" validate:"max=10,dive,max=50"`
}

// フラッシュカード更新（全体）リクエストDTO
type PutFlashcardRequest struct {
	DeckID  uuid.UUID `json:"deck_id" validate:"required"`
	Front   string    `json:"front" validate:"required,max=200"`
	Back    string    `json:"back" validate:"required,max=500"`
	Reading string    `json:"reading" validate:"max=100"`
	Example string    `json:"example" validate:"max=500"`
	Tags    []string  `json:"tags" validate:"max=10,dive,max=50"`
}

// フラッシュカード更新（部分）リクエストDTO
type PatchFlashcardRequest struct {
	DeckID  *uuid.UUID `json:"deck_id,omitempty"`
	Front   *string    `json:"front,omitempty" validate:"omitempty,min=1,max=200"`
	Back    *string    `json:"back,omitempty" validate:"omitempty,min=1,max=500"`
	Reading *string    `json:"reading,omitempty" validate:"omitempty,max=100"`
	Example *string    `json:"example,omitempty" validate:"omitempty,max=500"`
	Tags    []string   `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

// ListFlashcardsQuery は一覧取得の条件です。Limit が nil の場合は設定値を使います。
type ListFlashcardsQuery struct {
	DeckID *uuid.UUID
	Limit  *int
	Offset int
}

// FlashcardListResponse は一覧取得のレスポンスです
type FlashcardListResponse struct {
	Flashcards []*Flashcard `json:"flashcards"`
	Pagination Pagination   `json:"pagination"`
}

// Pagination はページング情報です
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}
