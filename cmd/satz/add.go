package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satzlabs/satz/internal/review"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [path]",
		Short: "Add sentences from a file or standard input, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, _, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			input := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("os.Open(%s) > %w", args[0], err)
				}
				defer func() {
					_ = file.Close()
				}()
				input = file
			}

			return runAdd(cmd.Context(), store, input, cmd.OutOrStdout())
		},
	}
}

// runAdd inserts one sentence per non-blank line. A failed insert, a
// duplicate included, aborts the run so the input can be fixed and
// retried.
func runAdd(ctx context.Context, store review.Store, input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	added, skipped := 0, 0
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			skipped++
			continue
		}
		if err := store.InsertSentence(ctx, text); err != nil {
			return fmt.Errorf("store.InsertSentence(%q) > %w", text, err)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input > %w", err)
	}

	fmt.Fprintf(output, "%d sentence(s) added, %d line(s) skipped\n", added, skipped)
	return nil
}
