package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB はテストごとに独立したインメモリ sqlite を用意します。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Open(sqlite.Open(dsn), logger)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 同じインメモリDBを共有するため接続は1本に固定する
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedTenant(t *testing.T, db *gorm.DB) *model.Tenant {
	t.Helper()
	tenant := &model.Tenant{TenantID: uuid.New(), Name: "tester", Email: uuid.NewString() + "@example.com"}
	require.NoError(t, NewGormTenantRepository().Create(context.Background(), db, tenant))
	return tenant
}

func seedDeck(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) *model.Deck {
	t.Helper()
	deck := &model.Deck{DeckID: uuid.New(), TenantID: tenantID, Name: name}
	require.NoError(t, NewGormDeckRepository().Create(context.Background(), db, deck))
	return deck
}

func seedCard(t *testing.T, db *gorm.DB, tenantID, deckID uuid.UUID, front string, nextReview time.Time) *model.Flashcard {
	t.Helper()
	state := srs.NewState(nextReview)
	card := &model.Flashcard{
		CardID:   uuid.New(),
		TenantID: tenantID,
		DeckID:   deckID,
		Front:    front,
		Back:     front + " (back)",
		Tags:     []string{"n5"},
		Review:   model.ReviewDataFromState(state, 0),
	}
	require.NoError(t, NewGormFlashcardRepository().Create(context.Background(), db, card))
	return card
}
