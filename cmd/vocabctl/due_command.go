package main

import (
	"fmt"
	"strconv"
	"time"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository"
	"go_vocab_srs/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newDueCommand(ctx *commandContext) *cobra.Command {
	var tenantFlag, deckFlag, atFlag string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the cards due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := uuid.Parse(tenantFlag)
			if err != nil {
				return fmt.Errorf("invalid --tenant: %w", err)
			}
			q := model.DueCardsQuery{Offset: offset}
			if deckFlag != "" {
				deckID, err := uuid.Parse(deckFlag)
				if err != nil {
					return fmt.Errorf("invalid --deck: %w", err)
				}
				q.DeckID = &deckID
			}
			if cmd.Flags().Changed("limit") {
				q.Limit = &limit
			}

			clock := ctx.now
			if atFlag != "" {
				at, err := time.Parse(time.RFC3339, atFlag)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				clock = func() time.Time { return at.UTC() }
			}

			db, err := ctx.ensureDB()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			reviewService := service.NewReviewService(db, repository.NewGormFlashcardRepository(), cfg, clock)

			resp, err := reviewService.GetDueCards(ctx.withLogger(cmd.Context()), tenantID, q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(resp.Cards) == 0 {
				fmt.Fprintf(out, "No cards due (%d total)\n", resp.Pagination.Total)
				return nil
			}

			rows := make([][]string, 0, len(resp.Cards))
			for i, c := range resp.Cards {
				rows = append(rows, []string{
					strconv.Itoa(resp.Pagination.Offset + i + 1),
					c.CardID.String(),
					c.Front,
					c.Back,
					c.Review.NextReview.UTC().Format(time.RFC3339),
					strconv.Itoa(c.Review.Interval),
					strconv.FormatFloat(c.Review.EaseFactor, 'f', 2, 64),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Card", "Front", "Back", "Next review", "Interval", "Ease"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d of %d due", len(resp.Cards), resp.Pagination.Total)
			if resp.Pagination.HasMore {
				fmt.Fprint(out, " (more available)")
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantFlag, "tenant", "", "Tenant ID")
	cmd.Flags().StringVar(&deckFlag, "deck", "", "Restrict to one deck")
	cmd.Flags().StringVar(&atFlag, "at", "", "Reference time in RFC3339 (default now)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of cards (default app.review_limit)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of cards to skip")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}
