package service

import (
	"errors"
	"testing"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_deckService_CreateDeck(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	tenantID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		svc := NewDeckService(db, deckRepo, mocks.NewFlashcardRepository(t))

		deckRepo.On("CheckNameExists", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "JLPT N5", (*uuid.UUID)(nil)).Return(false, nil).Once()
		deckRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Deck")).
			Run(func(args mock.Arguments) {
				deck := args.Get(2).(*model.Deck)
				assert.Equal(t, tenantID, deck.TenantID)
				assert.NotEqual(t, uuid.Nil, deck.DeckID)
			}).Return(nil).Once()

		deck, err := svc.CreateDeck(ctx, tenantID, &model.CreateDeckRequest{Name: " JLPT N5 ", Description: "基本"})
		require.NoError(t, err)
		assert.Equal(t, "JLPT N5", deck.Name)
		assert.Equal(t, "基本", deck.Description)
	})

	t.Run("異常系: 名前の重複", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		svc := NewDeckService(db, deckRepo, mocks.NewFlashcardRepository(t))

		deckRepo.On("CheckNameExists", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "dup", (*uuid.UUID)(nil)).Return(true, nil).Once()

		_, err := svc.CreateDeck(ctx, tenantID, &model.CreateDeckRequest{Name: "dup"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func Test_deckService_UpdateDeck(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	tenantID := uuid.New()
	deckID := uuid.New()

	tests := []struct {
		name      string
		req       *model.UpdateDeckRequest
		setupMock func(repo *mocks.DeckRepository)
		wantErr   error
	}{
		{
			name: "正常系: 名前と説明を更新",
			req:  &model.UpdateDeckRequest{Name: "new", Description: "desc"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(&model.Deck{DeckID: deckID, TenantID: tenantID, Name: "old"}, nil).Once()
				repo.On("CheckNameExists", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "new", &deckID).Return(false, nil).Once()
				repo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID, map[string]interface{}{"name": "new", "description": "desc"}).Return(nil).Once()
			},
		},
		{
			name: "正常系: 名前が同じなら重複チェックしない",
			req:  &model.UpdateDeckRequest{Name: "same"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(&model.Deck{DeckID: deckID, TenantID: tenantID, Name: "same"}, nil).Once()
				repo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "異常系: デッキが存在しない",
			req:  &model.UpdateDeckRequest{Name: "x"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 他のデッキと名前が重複",
			req:  &model.UpdateDeckRequest{Name: "taken"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(&model.Deck{DeckID: deckID, Name: "old"}, nil).Once()
				repo.On("CheckNameExists", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "taken", &deckID).Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewDeckRepository(t)
			tt.setupMock(repo)
			svc := NewDeckService(db, repo, mocks.NewFlashcardRepository(t))

			deck, err := svc.UpdateDeck(ctx, tenantID, deckID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, deck)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Name, deck.Name)
		})
	}
}

func Test_deckService_DeleteDeck(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	tenantID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: カードもまとめて削除", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		cardRepo := mocks.NewFlashcardRepository(t)
		deckRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(nil).Once()
		cardRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(int64(3), nil).Once()

		require.NoError(t, NewDeckService(db, deckRepo, cardRepo).DeleteDeck(ctx, tenantID, deckID))
	})

	t.Run("異常系: デッキが存在しない", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		deckRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(model.ErrNotFound).Once()

		err := NewDeckService(db, deckRepo, mocks.NewFlashcardRepository(t)).DeleteDeck(ctx, tenantID, deckID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: カード削除の失敗", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		cardRepo := mocks.NewFlashcardRepository(t)
		deckRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(nil).Once()
		cardRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, deckID).Return(int64(0), errors.New("db down")).Once()

		err := NewDeckService(db, deckRepo, cardRepo).DeleteDeck(ctx, tenantID, deckID)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Code)
	})
}

func Test_deckService_ListDecks(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	tenantID := uuid.New()

	deckRepo := mocks.NewDeckRepository(t)
	deckRepo.On("FindByTenant", ctx, db, tenantID).Return(nil, nil).Once()

	decks, err := NewDeckService(db, deckRepo, mocks.NewFlashcardRepository(t)).ListDecks(ctx, tenantID)
	require.NoError(t, err)
	assert.NotNil(t, decks)
	assert.Empty(t, decks)
}
