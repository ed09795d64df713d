package main

import (
	"github.com/spf13/cobra"
)

// skipConfigAnnotation が付いたコマンドは設定ファイルを読みません。
const skipConfigAnnotation = "vocabctl/skip-config"

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	return newRootCommandWithContext(newCommandContext(&configFlag, &verboseFlag), &configFlag, &verboseFlag)
}

func newRootCommandWithContext(ctx *commandContext, configFlag *string, verboseFlag *bool) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Vocabulary SRS maintenance CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(configFlag, "config", "c", "", "Directory containing config.yaml (default \"configs\")")
	rootCmd.PersistentFlags().BoolVarP(verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newSeedCommand(ctx))
	rootCmd.AddCommand(newDueCommand(ctx))
	rootCmd.AddCommand(newSimulateCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipConfigAnnotation]; ok {
			return true
		}
		if c.Name() == "help" {
			return true
		}
	}
	return false
}
