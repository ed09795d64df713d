package main

import (
	"errors"
	"fmt"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository"
	"go_vocab_srs/internal/service"

	"github.com/spf13/cobra"
)

// sampleCards は seed で登録するカードです。
var sampleCards = []model.CreateFlashcardRequest{
	{Front: "apple", Back: "りんご", Example: "I eat an apple every morning.", Tags: []string{"noun", "food"}},
	{Front: "borrow", Back: "借りる", Example: "Can I borrow your pen?", Tags: []string{"verb"}},
	{Front: "curious", Back: "好奇心の強い", Example: "Cats are curious animals.", Tags: []string{"adjective"}},
	{Front: "deadline", Back: "締め切り", Example: "The deadline is Friday.", Tags: []string{"noun", "business"}},
	{Front: "eventually", Back: "最終的に", Example: "He eventually agreed.", Tags: []string{"adverb"}},
}

func newSeedCommand(ctx *commandContext) *cobra.Command {
	var name, email, deckName string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Register a sample tenant, deck and flashcards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.ensureDB()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			c := ctx.withLogger(cmd.Context())

			tenantRepo := repository.NewGormTenantRepository()
			deckRepo := repository.NewGormDeckRepository()
			cardRepo := repository.NewGormFlashcardRepository()
			tenantService := service.NewTenantService(db, tenantRepo)
			deckService := service.NewDeckService(db, deckRepo, cardRepo)
			cardService := service.NewFlashcardService(db, deckRepo, cardRepo, cfg, ctx.now)

			tenant, err := tenantService.CreateTenant(c, &model.CreateTenantRequest{Name: name, Email: email})
			if errors.Is(err, model.ErrConflict) {
				// 既存テナントにデッキを追加する
				tenant, err = tenantRepo.FindByEmail(c, db, email)
			}
			if err != nil {
				return fmt.Errorf("seed tenant: %w", err)
			}

			deck, err := deckService.CreateDeck(c, tenant.TenantID, &model.CreateDeckRequest{Name: deckName, Description: "vocabctl seed"})
			if err != nil {
				return fmt.Errorf("seed deck: %w", err)
			}

			for i := range sampleCards {
				req := sampleCards[i]
				req.DeckID = deck.DeckID
				if _, err := cardService.CreateFlashcard(c, tenant.TenantID, &req); err != nil {
					return fmt.Errorf("seed flashcard %q: %w", req.Front, err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tenant:     %s (%s)\n", tenant.TenantID, tenant.Email)
			fmt.Fprintf(out, "Deck:       %s (%s)\n", deck.DeckID, deck.Name)
			fmt.Fprintf(out, "Flashcards: %d\n", len(sampleCards))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Sample Learner", "Tenant name")
	cmd.Flags().StringVar(&email, "email", "learner@example.com", "Tenant email (reused when it already exists)")
	cmd.Flags().StringVar(&deckName, "deck", "Sample Deck", "Deck name")
	return cmd
}
