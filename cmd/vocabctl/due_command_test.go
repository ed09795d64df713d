package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"go_vocab_srs/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAndDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	out, err := env.run(t, "seed", "--email", "Seed@Example.com", "--deck", "Starter")
	require.NoError(t, err)
	assert.Contains(t, out, "Flashcards: 5")

	tenant, err := repository.NewGormTenantRepository().FindByEmail(context.Background(), env.db, "seed@example.com")
	require.NoError(t, err)

	t.Run("作成直後のカードはすべて復習対象", func(t *testing.T) {
		out, err := env.run(t, "due", "--tenant", tenant.TenantID.String())
		require.NoError(t, err)
		assert.Contains(t, out, "apple")
		assert.Contains(t, out, "5 of 5 due")
	})

	t.Run("limit で件数を絞る", func(t *testing.T) {
		out, err := env.run(t, "due", "--tenant", tenant.TenantID.String(), "--limit", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "2 of 5 due (more available)")
	})

	t.Run("作成前の時刻では対象なし", func(t *testing.T) {
		out, err := env.run(t, "due", "--tenant", tenant.TenantID.String(), "--at", now.Add(-time.Hour).Format(time.RFC3339))
		require.NoError(t, err)
		assert.Equal(t, "No cards due (0 total)", strings.TrimSpace(out))
	})

	t.Run("同じメールアドレスで再実行すると既存テナントに追加する", func(t *testing.T) {
		out, err := env.run(t, "seed", "--email", "seed@example.com", "--deck", "Second")
		require.NoError(t, err)
		assert.Contains(t, out, tenant.TenantID.String())

		out, err = env.run(t, "due", "--tenant", tenant.TenantID.String())
		require.NoError(t, err)
		assert.Contains(t, out, "10 of 10 due")
	})
}

func TestDueCommand_InvalidTenant(t *testing.T) {
	env := newTestEnv(t, time.Now().UTC())

	_, err := env.run(t, "due", "--tenant", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tenant")
}

func TestMigrateCommand(t *testing.T) {
	env := newTestEnv(t, time.Now().UTC())

	out, err := env.run(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "Migration completed", strings.TrimSpace(out))
}
