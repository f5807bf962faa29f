package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/satzlabs/satz/internal/cli"
	"github.com/satzlabs/satz/internal/config"
)

func newBundleCommand() *cobra.Command {
	bundleCommand := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle commands for reviewing sentences in batches",
	}

	bundleCommand.AddCommand(newBundleGenerateCommand())
	bundleCommand.AddCommand(newBundleAnswerCommand())

	return bundleCommand
}

func newBundleGenerateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "generate",
		Short: "Interactively assemble a new bundle from due and new sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			limit, err := resolveNewSentenceLimit(cmd.Flags(), cfg)
			if err != nil {
				return err
			}

			generateCLI := cli.NewGenerateBundleCLI(store, limit, cfg.Outputs.BundleDirectory)
			return generateCLI.Run(cmd.Context())
		},
	}
	command.Flags().IntP("new-limit", "n", 0, "Maximum number of new sentences to offer, overrides the configuration")
	return command
}

// resolveNewSentenceLimit takes the flag value when the flag was given,
// the configured value otherwise. The flag path is not covered by
// configuration validation, so negatives are rejected here.
func resolveNewSentenceLimit(flags *pflag.FlagSet, cfg *config.Config) (int, error) {
	limit := cfg.Review.NewSentenceLimit
	if flags.Changed("new-limit") {
		var err error
		if limit, err = flags.GetInt("new-limit"); err != nil {
			return 0, fmt.Errorf("flags.GetInt(new-limit) > %w", err)
		}
	}
	if limit < 0 {
		return 0, fmt.Errorf("new sentence limit must not be negative, got %d", limit)
	}
	return limit, nil
}

func newBundleAnswerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <bundle-id>",
		Short: "Score every sentence in a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, _, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			answerCLI := cli.NewAnswerBundleCLI(store)
			return answerCLI.Run(cmd.Context(), args[0])
		},
	}
}
