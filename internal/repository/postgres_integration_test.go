//go:build integration

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/srs"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// startPostgres は PostgreSQL コンテナを起動し、マイグレーション済みの接続を返します。
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not construct pool")
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_srs",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start PostgreSQL resource")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge resource: %s", err)
		}
	})

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	url := fmt.Sprintf("postgres://user:secret@%s:%s/vocab_srs?sslmode=disable", host, resource.GetPort("5432/tcp"))

	var db *gorm.DB
	require.NoError(t, pool.Retry(func() error {
		var errRetry error
		db, errRetry = NewDB(url, logger)
		return errRetry
	}), "could not connect to PostgreSQL")

	require.NoError(t, Migrate(db))
	return db
}

func TestPostgres_ReviewStateAndDueQuery(t *testing.T) {
	ctx := context.Background()
	db := startPostgres(t)
	tenants := NewGormTenantRepository()
	cards := NewGormFlashcardRepository()

	tenant := seedTenant(t, db)
	dup := &model.Tenant{TenantID: tenant.TenantID, Name: "dup", Email: "x@example.com"}
	assert.ErrorIs(t, tenants.Create(ctx, db, dup), model.ErrConflict, "23505 is mapped to ErrConflict")

	deck := seedDeck(t, db, tenant.TenantID, "postgres")
	ref := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	due := seedCard(t, db, tenant.TenantID, deck.DeckID, "due", ref.Add(-time.Hour))
	seedCard(t, db, tenant.TenantID, deck.DeckID, "later", ref.Add(time.Hour))

	found, err := cards.FindDueCandidates(ctx, db, tenant.TenantID, &deck.DeckID, ref)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, due.CardID, found[0].CardID)

	next, err := srs.Transition(due.Review.ToState(), srs.Easy, ref)
	require.NoError(t, err)

	// 同じバージョンで同時に書き込んだ場合、成功するのは1件だけ
	var wg sync.WaitGroup
	results := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cards.UpdateReviewState(ctx, db, tenant.TenantID, due.CardID, model.ReviewDataFromState(next, 0), 0)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, model.ErrConflict)
		}
	}
	assert.Equal(t, 1, succeeded)

	got, err := cards.FindByID(ctx, db, tenant.TenantID, due.CardID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Review.Version)
	assert.Equal(t, next.Interval, got.Review.Interval)
	assert.InDelta(t, next.EaseFactor, got.Review.EaseFactor, 1e-9)
}
