package repository

import (
	"context"
	"testing"

	"go_vocab_srs/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTenantRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormTenantRepository()

	tenant := &model.Tenant{TenantID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, db, tenant))

	t.Run("FindByID", func(t *testing.T) {
		got, err := repo.FindByID(ctx, db, tenant.TenantID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("FindByEmail", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, db, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, tenant.TenantID, got.TenantID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = repo.FindByEmail(ctx, db, "nobody@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("email is matched case-insensitively", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, db, "  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, tenant.TenantID, got.TenantID)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, db, tenant.TenantID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, db, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Exists ignores soft-deleted tenants", func(t *testing.T) {
		gone := &model.Tenant{TenantID: uuid.New(), Name: "Gone", Email: "gone@example.com"}
		require.NoError(t, repo.Create(ctx, db, gone))
		require.NoError(t, db.Delete(&model.Tenant{}, "tenant_id = ?", gone.TenantID).Error)

		ok, err := repo.Exists(ctx, db, gone.TenantID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := &model.Tenant{TenantID: uuid.New(), Name: "Alice2", Email: "ALICE@example.com"}
		assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)
	})
}
