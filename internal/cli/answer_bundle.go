package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/satzlabs/satz/internal/review"
)

// AnswerBundleCLI drives the transactional bundle answering workflow.
type AnswerBundleCLI struct {
	*InteractiveCLI
	store review.Store
	now   func() time.Time
}

// NewAnswerBundleCLI creates the answering workflow.
func NewAnswerBundleCLI(store review.Store) *AnswerBundleCLI {
	return &AnswerBundleCLI{
		InteractiveCLI: newInteractiveCLI(),
		store:          store,
		now:            time.Now,
	}
}

// Run scores every sentence in the bundle inside one transactional unit.
// If anything fails before the commit, no sentence update and no
// answered flag survives and the bundle stays answerable from scratch.
func (c *AnswerBundleCLI) Run(ctx context.Context, bundleID string) error {
	tx, err := c.store.BeginAnswerTx(ctx)
	if err != nil {
		return fmt.Errorf("store.BeginAnswerTx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sentences, err := tx.SentencesInBundle(ctx, bundleID)
	if err != nil {
		return fmt.Errorf("tx.SentencesInBundle(%s) > %w", bundleID, err)
	}

	for _, sentence := range sentences {
		score, err := c.askScore(sentence)
		if err != nil {
			return err
		}

		updated, err := review.Schedule(sentence, score, c.now().UTC())
		if err != nil {
			return fmt.Errorf("review.Schedule(%d) > %w", sentence.ID, err)
		}
		if err := tx.UpdateSentence(ctx, &updated); err != nil {
			return fmt.Errorf("tx.UpdateSentence(%d) > %w", updated.ID, err)
		}
	}

	if err := tx.MarkBundleAnswered(ctx, bundleID); err != nil {
		return fmt.Errorf("tx.MarkBundleAnswered(%s) > %w", bundleID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}

	_, _ = c.green.Fprintf(c.stdoutWriter, "Answered bundle %s with %d sentence(s)\n", bundleID, len(sentences))
	return nil
}

// askScore prompts for a recall grade. An unrecognized grade is an
// error: guessing a default here would silently corrupt the schedule.
func (c *AnswerBundleCLI) askScore(sentence review.Sentence) (review.Score, error) {
	fmt.Fprintf(c.stdoutWriter, "Sentence %s, 1: Hard, 2: Good, 3: Easy: ",
		c.bold.Sprintf("%q", sentence.Text))

	input, err := c.readLine()
	if err != nil {
		return 0, err
	}

	score, err := review.ParseScore(input)
	if err != nil {
		return 0, fmt.Errorf("review.ParseScore() > %w", err)
	}
	return score, nil
}
