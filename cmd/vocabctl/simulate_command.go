package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go_vocab_srs/internal/srs"

	"github.com/spf13/cobra"
)

// simulationStep は 1 回の復習の結果です。
type simulationStep struct {
	ReviewedAt time.Time
	Rating     srs.Rating
	State      srs.State
}

// simulate は start に作成したカードを、毎回期日ちょうどに ratings の順で復習した場合の推移を返します。
func simulate(start time.Time, ratings []srs.Rating) ([]simulationStep, error) {
	state := srs.NewState(start)
	steps := make([]simulationStep, 0, len(ratings))
	for _, rating := range ratings {
		at := state.NextReview
		next, err := srs.Transition(state, rating, at)
		if err != nil {
			return nil, err
		}
		steps = append(steps, simulationStep{ReviewedAt: at, Rating: rating, State: next})
		state = next
	}
	return steps, nil
}

func parseRatings(value string) ([]srs.Rating, error) {
	parts := strings.Split(value, ",")
	ratings := make([]srs.Rating, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r, err := srs.ParseRating(p)
		if err != nil {
			return nil, fmt.Errorf("rating %q: %w", p, err)
		}
		ratings = append(ratings, r)
	}
	if len(ratings) == 0 {
		return nil, fmt.Errorf("no ratings given")
	}
	return ratings, nil
}

func newSimulateCommand() *cobra.Command {
	var ratingsFlag, startFlag string

	cmd := &cobra.Command{
		Use:         "simulate",
		Short:       "Show the review schedule produced by a sequence of ratings",
		Example:     "  vocabctl simulate --ratings good,good,hard,easy --start 2026-01-01T09:00:00Z",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ratings, err := parseRatings(ratingsFlag)
			if err != nil {
				return err
			}
			start := time.Now().UTC()
			if startFlag != "" {
				start, err = time.Parse(time.RFC3339, startFlag)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				start = start.UTC()
			}

			steps, err := simulate(start, ratings)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(steps))
			for i, s := range steps {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					s.ReviewedAt.Format(time.DateOnly),
					s.Rating.String(),
					strconv.FormatFloat(s.State.EaseFactor, 'f', 2, 64),
					strconv.Itoa(s.State.Interval),
					strconv.Itoa(s.State.Repetitions),
					s.State.NextReview.Format(time.DateOnly),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Reviewed", "Rating", "Ease", "Interval", "Reps", "Next review"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&ratingsFlag, "ratings", "r", "", "Comma separated ratings (again, hard, good, easy)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Card creation time in RFC3339 (default now)")
	_ = cmd.MarkFlagRequired("ratings")
	return cmd
}
