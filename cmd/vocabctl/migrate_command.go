package main

import (
	"fmt"

	"go_vocab_srs/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.ensureDB()
			if err != nil {
				return err
			}
			if err := repository.Migrate(db.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migration completed")
			return nil
		},
	}
}
