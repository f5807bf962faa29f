package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/satzlabs/satz/internal/review"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every sentence with its review schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, _, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			sentences, err := store.AllSentences(cmd.Context())
			if err != nil {
				return fmt.Errorf("store.AllSentences() > %w", err)
			}
			return runList(sentences, cmd.OutOrStdout())
		},
	}
}

func runList(sentences []review.Sentence, output io.Writer) error {
	w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTEXT\tLAST ANSWERED\tDUE\tINTERVAL\tREPS\tEASE\tSUSPENDED")
	for _, sentence := range sentences {
		lastAnswered := "never"
		if sentence.LastAnsweredAt.Valid {
			lastAnswered = humanize.Time(sentence.LastAnsweredAt.Time)
		}
		interval := "none"
		if sentence.IntervalInMins.Valid {
			interval = fmt.Sprintf("%.1f day(s)", float64(sentence.IntervalInMins.Int64)/(24*60))
		}
		suspended := ""
		if sentence.IsSuspended {
			suspended = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f\t%s\n",
			sentence.ID, sentence.Text, lastAnswered, humanize.Time(sentence.DueAt),
			interval, sentence.Reps, sentence.Ease, suspended)
	}
	return w.Flush()
}
