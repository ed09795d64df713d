package model

import (
	"go_vocab_srs/internal/srs"

	"github.com/google/uuid"
)

// SubmitReviewRequest は復習結果送信リクエストのDTO
// rating は "again" / "hard" / "good" / "easy" のいずれか
type SubmitReviewRequest struct {
	Rating string `json:"rating" validate:"required"`
}

// DueCardsQuery は復習キュー取得の条件です。Limit が nil の場合は設定値を使います。
type DueCardsQuery struct {
	DeckID *uuid.UUID
	Limit  *int
	Offset int
}

// DueCardsResponse は復習キューのレスポンスDTO
type DueCardsResponse struct {
	Cards      []*Flashcard `json:"cards"`
	Pagination Pagination   `json:"pagination"`
}

// DueCountResponse は復習対象件数のレスポンスDTO
type DueCountResponse struct {
	Count int `json:"count"`
}

// SRSInfo は 1 回の復習で状態がどう変わったかを表します
type SRSInfo struct {
	Rating         srs.Rating `json:"rating"`
	PreviousValues srs.State  `json:"previousValues"`
	NewValues      srs.State  `json:"newValues"`
}

// ReviewResultResponse は復習結果送信のレスポンスDTO
type ReviewResultResponse struct {
	Card    *Flashcard `json:"card"`
	SRSInfo SRSInfo    `json:"srsInfo"`
}
