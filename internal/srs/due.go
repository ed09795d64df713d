package srs

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Candidate は SelectDue に渡す 1 件分の入力です。
type Candidate struct {
	ID        uuid.UUID
	Scope     uuid.UUID // 所属するコレクション (デッキ) の ID
	State     State
	UpdatedAt time.Time
}

// ScopeFilter は候補を対象に含めるかどうかを判定します。nil はすべて対象です。
type ScopeFilter func(Candidate) bool

// InScope は Scope が scopeID に一致する候補だけを通すフィルタを返します。
func InScope(scopeID uuid.UUID) ScopeFilter {
	return func(c Candidate) bool {
		return c.Scope == scopeID
	}
}

// DueQuery は SelectDue の問い合わせ条件です。
type DueQuery struct {
	ReferenceInstant time.Time
	Limit            int
	Offset           int
	Scope            ScopeFilter
}

// DuePage は SelectDue の結果です。IDs は復習すべき順に並んでいます。
type DuePage struct {
	IDs     []uuid.UUID
	Total   int
	HasMore bool
}

// SelectDue は items のうち ReferenceInstant の時点で復習対象のものを並べ、
// Offset 件を飛ばして最大 Limit 件を返します。
//
// 並び順は NextReview の昇順 (期限切れが古いものから)、同時刻なら UpdatedAt の降順、
// さらに ID の昇順です。同じデータに対して繰り返しページングしても結果は安定します。
// Limit か Offset が負の場合は ErrInvalidPagination を返し、結果は返しません。
func SelectDue(items []Candidate, q DueQuery) (DuePage, error) {
	if q.Limit < 0 {
		return DuePage{}, fmt.Errorf("%w: limit %d", ErrInvalidPagination, q.Limit)
	}
	if q.Offset < 0 {
		return DuePage{}, fmt.Errorf("%w: offset %d", ErrInvalidPagination, q.Offset)
	}

	due := make([]Candidate, 0, len(items))
	for _, c := range items {
		if !c.State.IsDue(q.ReferenceInstant) {
			continue
		}
		if q.Scope != nil && !q.Scope(c) {
			continue
		}
		due = append(due, c)
	}
	slices.SortFunc(due, compareDue)

	total := len(due)
	start := min(q.Offset, total)
	// start+Limit は溢れる可能性があるので残り件数と比べる
	end := total
	if q.Limit < total-start {
		end = start + q.Limit
	}

	ids := make([]uuid.UUID, 0, end-start)
	for _, c := range due[start:end] {
		ids = append(ids, c.ID)
	}

	return DuePage{
		IDs:     ids,
		Total:   total,
		HasMore: start+len(ids) < total,
	}, nil
}

func compareDue(a, b Candidate) int {
	if c := a.State.NextReview.Compare(b.State.NextReview); c != 0 {
		return c
	}
	// 更新が新しいものを先に
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	return slices.Compare(a.ID[:], b.ID[:])
}
