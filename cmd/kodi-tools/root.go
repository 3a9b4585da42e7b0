package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var jsonFlag bool
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &jsonFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "kodi-tools",
		Short:         "Library maintenance tools for Kodi special episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSequenceCommand(ctx))
	rootCmd.AddCommand(newExtrasCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
