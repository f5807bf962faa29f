package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/satzlabs/satz/internal/review"
)

// GenerateBundleCLI drives the interactive bundle generation workflow:
// due and new sentences are offered one by one and the accepted ones
// become the members of a freshly created bundle.
//
// Every decision is persisted immediately, outside any transaction. A
// failure mid-loop therefore leaves a partially populated bundle behind;
// that bundle is still answerable.
type GenerateBundleCLI struct {
	*InteractiveCLI
	store            review.Store
	newSentenceLimit int
	bundleDir        string
}

// NewGenerateBundleCLI creates the generation workflow. newSentenceLimit
// caps how many never-answered sentences are surfaced.
func NewGenerateBundleCLI(store review.Store, newSentenceLimit int, bundleDir string) *GenerateBundleCLI {
	return &GenerateBundleCLI{
		InteractiveCLI:   newInteractiveCLI(),
		store:            store,
		newSentenceLimit: newSentenceLimit,
		bundleDir:        bundleDir,
	}
}

// Run executes the whole generation session. A negative limit is
// rejected up front, before the bundle row exists.
func (c *GenerateBundleCLI) Run(ctx context.Context) error {
	if c.newSentenceLimit < 0 {
		return fmt.Errorf("new sentence limit %d is negative", c.newSentenceLimit)
	}

	bundleID, err := c.store.CreateBundle(ctx)
	if err != nil {
		return fmt.Errorf("store.CreateBundle() > %w", err)
	}

	due, err := c.store.DueSentences(ctx)
	if err != nil {
		return fmt.Errorf("store.DueSentences() > %w", err)
	}
	fresh, err := c.store.NewSentences(ctx, c.newSentenceLimit)
	if err != nil {
		return fmt.Errorf("store.NewSentences() > %w", err)
	}
	if len(fresh) > c.newSentenceLimit {
		// Guards against a store that ignores its fetch limit.
		fresh = fresh[:c.newSentenceLimit]
	}

	fmt.Fprintf(c.stdoutWriter, "Created bundle %s\n", bundleID)

	var accepted []review.Sentence
	for _, sentence := range due {
		if err := c.decide(ctx, bundleID, sentence, "Due", &accepted); err != nil {
			return err
		}
	}
	for _, sentence := range fresh {
		if err := c.decide(ctx, bundleID, sentence, "New", &accepted); err != nil {
			return err
		}
	}

	if err := c.writeBundleFile(bundleID, accepted); err != nil {
		return err
	}

	_, _ = c.green.Fprintf(c.stdoutWriter, "Created bundle with %d sentence(s)\n", len(accepted))
	for _, sentence := range accepted {
		fmt.Fprintln(c.stdoutWriter, sentence.Text)
	}
	return nil
}

// decide prompts for one candidate and applies the chosen action.
// Unrecognized input skips the sentence with a warning.
func (c *GenerateBundleCLI) decide(ctx context.Context, bundleID string, sentence review.Sentence, kind string, accepted *[]review.Sentence) error {
	fmt.Fprintf(c.stdoutWriter, "%s sentence %s, [a]dd, [s]kip, sus[p]end: ",
		kind, c.bold.Sprintf("%q", sentence.Text))

	decision, err := c.readLine()
	if err != nil {
		return err
	}

	switch decision {
	case "a":
		if err := c.store.AddSentenceToBundle(ctx, bundleID, sentence); err != nil {
			return fmt.Errorf("store.AddSentenceToBundle(%s) > %w", bundleID, err)
		}
		*accepted = append(*accepted, sentence)
	case "s":
	case "p":
		sentence.Suspend()
		if err := c.store.UpdateSentence(ctx, &sentence); err != nil {
			return fmt.Errorf("store.UpdateSentence(%d) > %w", sentence.ID, err)
		}
	default:
		slog.Warn("Unrecognized decision, skipping sentence", "decision", decision)
	}
	return nil
}

// writeBundleFile records the accepted texts next to the database so the
// bundle can be studied away from the tool.
func (c *GenerateBundleCLI) writeBundleFile(bundleID string, accepted []review.Sentence) error {
	texts := make([]string, 0, len(accepted))
	for _, sentence := range accepted {
		texts = append(texts, sentence.Text)
	}

	path := filepath.Join(c.bundleDir, bundleID+".txt")
	if err := os.WriteFile(path, []byte(strings.Join(texts, "\n")), 0644); err != nil {
		return fmt.Errorf("write bundle file %s > %w", path, err)
	}
	return nil
}
