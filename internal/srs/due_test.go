package srs

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(nextReview, updatedAt time.Time) Candidate {
	return Candidate{
		ID:        uuid.New(),
		State:     State{EaseFactor: DefaultEaseFactor, Interval: 1, NextReview: nextReview},
		UpdatedAt: updatedAt,
	}
}

func TestSelectDue_YesterdayTodayTomorrow(t *testing.T) {
	today := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	yesterday := candidate(today.AddDate(0, 0, -1), today)
	dueToday := candidate(today, today)
	tomorrow := candidate(today.AddDate(0, 0, 1), today)

	page, err := SelectDue([]Candidate{tomorrow, dueToday, yesterday}, DueQuery{
		ReferenceInstant: today,
		Limit:            10,
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{yesterday.ID, dueToday.ID}, page.IDs)
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasMore)
}

func TestSelectDue_TieBreakByUpdatedAtDesc(t *testing.T) {
	at := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	older := candidate(at, at.Add(-time.Hour))
	newer := candidate(at, at)

	page, err := SelectDue([]Candidate{older, newer}, DueQuery{ReferenceInstant: at, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newer.ID, older.ID}, page.IDs)
}

func TestSelectDue_ScopeFilter(t *testing.T) {
	at := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	deckA, deckB := uuid.New(), uuid.New()

	a1 := candidate(at.Add(-2*time.Hour), at)
	a1.Scope = deckA
	b1 := candidate(at.Add(-3*time.Hour), at)
	b1.Scope = deckB
	a2 := candidate(at.Add(-time.Hour), at)
	a2.Scope = deckA

	page, err := SelectDue([]Candidate{a1, b1, a2}, DueQuery{
		ReferenceInstant: at,
		Limit:            10,
		Scope:            InScope(deckA),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a1.ID, a2.ID}, page.IDs)
	assert.Equal(t, 2, page.Total)
}

func TestSelectDue_Pagination(t *testing.T) {
	at := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	items := make([]Candidate, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, candidate(at.Add(-time.Duration(5-i)*time.Hour), at))
	}

	tests := []struct {
		limit, offset int
		wantIDs       []uuid.UUID
		wantHasMore   bool
	}{
		{2, 0, []uuid.UUID{items[0].ID, items[1].ID}, true},
		{2, 2, []uuid.UUID{items[2].ID, items[3].ID}, true},
		{2, 4, []uuid.UUID{items[4].ID}, false},
		{2, 5, []uuid.UUID{}, false},
		{2, 50, []uuid.UUID{}, false},
		{0, 0, []uuid.UUID{}, true},
		{10, 0, []uuid.UUID{items[0].ID, items[1].ID, items[2].ID, items[3].ID, items[4].ID}, false},
		{math.MaxInt, 1, []uuid.UUID{items[1].ID, items[2].ID, items[3].ID, items[4].ID}, false},
		{math.MaxInt, math.MaxInt, []uuid.UUID{}, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d,offset=%d", tt.limit, tt.offset), func(t *testing.T) {
			page, err := SelectDue(items, DueQuery{ReferenceInstant: at, Limit: tt.limit, Offset: tt.offset})
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, page.IDs)
			assert.Equal(t, 5, page.Total)
			assert.Equal(t, tt.wantHasMore, page.HasMore)
		})
	}
}

func TestSelectDue_InvalidPagination(t *testing.T) {
	at := time.Now()
	items := []Candidate{candidate(at.Add(-time.Hour), at)}

	for _, q := range []DueQuery{
		{ReferenceInstant: at, Limit: -1},
		{ReferenceInstant: at, Limit: 10, Offset: -1},
	} {
		page, err := SelectDue(items, q)
		assert.ErrorIs(t, err, ErrInvalidPagination)
		assert.Nil(t, page.IDs)
		assert.Zero(t, page.Total)
	}
}

func TestSelectDue_NewItemsAreDueImmediately(t *testing.T) {
	created := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	c := Candidate{ID: uuid.New(), State: NewState(created), UpdatedAt: created}

	page, err := SelectDue([]Candidate{c}, DueQuery{ReferenceInstant: created, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c.ID}, page.IDs)
}

// ページを連結すると重複も欠落もなく全件の並びが再現されること
func TestSelectDue_PagesConcatenateToFullSet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	at := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	items := make([]Candidate, 0, 60)
	for i := 0; i < 60; i++ {
		// 同時刻を多めに作ってタイブレークを効かせる
		next := at.Add(time.Duration(rng.Intn(10)-7) * time.Hour)
		updated := at.Add(-time.Duration(rng.Intn(3)) * time.Minute)
		items = append(items, candidate(next, updated))
	}

	full, err := SelectDue(items, DueQuery{ReferenceInstant: at, Limit: len(items)})
	require.NoError(t, err)

	for _, size := range []int{1, 3, 7, 50} {
		var got []uuid.UUID
		seen := map[uuid.UUID]bool{}
		for offset := 0; ; offset += size {
			// 入力の並び順を毎回変えても結果は同じでなければならない
			shuffled := append([]Candidate(nil), items...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			page, err := SelectDue(shuffled, DueQuery{ReferenceInstant: at, Limit: size, Offset: offset})
			require.NoError(t, err)
			for _, id := range page.IDs {
				require.False(t, seen[id], "duplicate id across pages")
				seen[id] = true
			}
			got = append(got, page.IDs...)
			if !page.HasMore {
				break
			}
		}
		assert.Equal(t, full.IDs, got, "page size %d", size)
	}

	for _, id := range full.IDs {
		for _, c := range items {
			if c.ID == id {
				assert.False(t, c.State.NextReview.After(at))
			}
		}
	}
}
