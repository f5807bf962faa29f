package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review

// Validation failures surfaced by the store.
var (
	ErrEmptyText = errors.New("sentence text is empty")
	ErrNotFound  = errors.New("not found")
)

// Store is the persistence contract the review workflows run against.
type Store interface {
	InsertSentence(ctx context.Context, text string) error
	DueSentences(ctx context.Context) ([]Sentence, error)
	NewSentences(ctx context.Context, limit int) ([]Sentence, error)
	AllSentences(ctx context.Context) ([]Sentence, error)
	UpdateSentence(ctx context.Context, sentence *Sentence) error
	CreateBundle(ctx context.Context) (string, error)
	AddSentenceToBundle(ctx context.Context, bundleID string, sentence Sentence) error
	SentencesInBundle(ctx context.Context, bundleID string) ([]Sentence, error)
	MarkBundleAnswered(ctx context.Context, bundleID string) error
	BeginAnswerTx(ctx context.Context) (BundleTx, error)
}

// BundleTx is the transaction-scoped view of the store used to answer a
// bundle. Writes made through it stay invisible to other readers until
// Commit; Rollback discards them. The unit owns the underlying
// connection until it is committed or rolled back, so a second unit
// cannot interleave with it.
type BundleTx interface {
	SentencesInBundle(ctx context.Context, bundleID string) ([]Sentence, error)
	UpdateSentence(ctx context.Context, sentence *Sentence) error
	MarkBundleAnswered(ctx context.Context, bundleID string) error
	Commit() error
	Rollback() error
}

// DBStore implements Store on a SQLite database.
type DBStore struct {
	db *sqlx.DB
}

var _ Store = (*DBStore)(nil)

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

const sentenceColumns = `
	sentences.id, sentences.text, sentences.created_at,
	sentences.last_answered_at, sentences.due_at, sentences.ease,
	sentences.interval_in_mins, sentences.reps, sentences.is_suspended`

const sentencesInBundleQuery = `
	SELECT ` + sentenceColumns + `
	FROM bundle_elements
	JOIN sentences ON sentences.id = bundle_elements.sentence_id
	WHERE bundle_elements.bundle_id = ? AND sentences.is_suspended = FALSE
	ORDER BY bundle_elements.id`

// selectSentences and updateSentence run against sqlx.ExtContext so the
// direct store and the transactional unit share identical queries.
func selectSentences(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]Sentence, error) {
	var sentences []Sentence
	if err := sqlx.SelectContext(ctx, q, &sentences, query, args...); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(sentences) > %w", err)
	}
	return sentences, nil
}

func markBundleAnswered(ctx context.Context, e sqlx.ExecerContext, bundleID string) error {
	result, err := e.ExecContext(ctx, `
		UPDATE bundles SET has_been_answered = TRUE WHERE id = ?`,
		bundleID)
	if err != nil {
		return fmt.Errorf("e.ExecContext(mark bundle %s answered) > %w", bundleID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("bundle %s: %w", bundleID, ErrNotFound)
	}
	return nil
}

func updateSentence(ctx context.Context, e sqlx.ExecerContext, sentence *Sentence) error {
	result, err := e.ExecContext(ctx, `
		UPDATE sentences
		SET last_answered_at = ?, due_at = ?, ease = ?, interval_in_mins = ?, reps = ?, is_suspended = ?
		WHERE id = ?`,
		sentence.LastAnsweredAt, sentence.DueAt, sentence.Ease,
		sentence.IntervalInMins, sentence.Reps, sentence.IsSuspended,
		sentence.ID)
	if err != nil {
		return fmt.Errorf("e.ExecContext(update sentence %d) > %w", sentence.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sentence %d: %w", sentence.ID, ErrNotFound)
	}
	return nil
}

// InsertSentence creates a new, never-answered sentence due immediately.
func (s *DBStore) InsertSentence(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}

	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO sentences (text, created_at, due_at, ease, reps, is_suspended)
		VALUES (?, ?, ?, ?, 0, FALSE)`,
		text, now, now, DefaultEase); err != nil {
		return fmt.Errorf("db.ExecContext(insert sentence) > %w", err)
	}
	return nil
}

// DueSentences returns answered, unsuspended sentences whose due time
// has passed, earliest first.
func (s *DBStore) DueSentences(ctx context.Context) ([]Sentence, error) {
	return selectSentences(ctx, s.db, `
		SELECT `+sentenceColumns+`
		FROM sentences
		WHERE due_at < ? AND reps > 0 AND is_suspended = FALSE
		ORDER BY due_at ASC`,
		time.Now().UTC())
}

// NewSentences returns up to limit never-answered, unsuspended
// sentences, oldest first.
func (s *DBStore) NewSentences(ctx context.Context, limit int) ([]Sentence, error) {
	return selectSentences(ctx, s.db, `
		SELECT `+sentenceColumns+`
		FROM sentences
		WHERE reps = 0 AND is_suspended = FALSE
		ORDER BY created_at ASC
		LIMIT ?`,
		limit)
}

// AllSentences returns every sentence ordered by last answered time.
// Never-answered sentences sort first; their relative order is not
// specified.
func (s *DBStore) AllSentences(ctx context.Context) ([]Sentence, error) {
	return selectSentences(ctx, s.db, `
		SELECT `+sentenceColumns+`
		FROM sentences
		ORDER BY last_answered_at ASC`)
}

// UpdateSentence overwrites the mutable scheduling fields of the
// sentence identified by sentence.ID.
func (s *DBStore) UpdateSentence(ctx context.Context, sentence *Sentence) error {
	return updateSentence(ctx, s.db, sentence)
}

const bundleIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newBundleID builds a human-scannable bundle id, date first so ids sort
// roughly by creation day.
func newBundleID(now time.Time) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = bundleIDAlphabet[rand.Intn(len(bundleIDAlphabet))]
	}
	return fmt.Sprintf("%s-%s", now.Format("2006-01-02"), suffix)
}

// CreateBundle allocates and persists a new, empty, unanswered bundle
// and returns its id.
func (s *DBStore) CreateBundle(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	bundleID := newBundleID(now)

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO bundles (id, created_at, has_been_answered)
		VALUES (?, ?, FALSE)`,
		bundleID, now); err != nil {
		return "", fmt.Errorf("db.ExecContext(insert bundle) > %w", err)
	}
	return bundleID, nil
}

// AddSentenceToBundle records the sentence's membership in the bundle.
// Foreign keys reject unknown sentence or bundle ids.
func (s *DBStore) AddSentenceToBundle(ctx context.Context, bundleID string, sentence Sentence) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO bundle_elements (sentence_id, bundle_id)
		VALUES (?, ?)`,
		sentence.ID, bundleID); err != nil {
		return fmt.Errorf("db.ExecContext(insert bundle_element) > %w", err)
	}
	return nil
}

// SentencesInBundle returns the bundle's unsuspended members in
// membership-insertion order.
func (s *DBStore) SentencesInBundle(ctx context.Context, bundleID string) ([]Sentence, error) {
	return selectSentences(ctx, s.db, sentencesInBundleQuery, bundleID)
}

// MarkBundleAnswered seals the bundle.
func (s *DBStore) MarkBundleAnswered(ctx context.Context, bundleID string) error {
	return markBundleAnswered(ctx, s.db, bundleID)
}

// BeginAnswerTx opens the transactional unit the answer workflow runs
// inside.
func (s *DBStore) BeginAnswerTx(ctx context.Context) (BundleTx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	return &dbBundleTx{tx: tx}, nil
}

// dbBundleTx holds the *sqlx.Tx for the lifetime of one answer workflow.
type dbBundleTx struct {
	tx *sqlx.Tx
}

var _ BundleTx = (*dbBundleTx)(nil)

func (t *dbBundleTx) SentencesInBundle(ctx context.Context, bundleID string) ([]Sentence, error) {
	return selectSentences(ctx, t.tx, sentencesInBundleQuery, bundleID)
}

func (t *dbBundleTx) UpdateSentence(ctx context.Context, sentence *Sentence) error {
	return updateSentence(ctx, t.tx, sentence)
}

func (t *dbBundleTx) MarkBundleAnswered(ctx context.Context, bundleID string) error {
	return markBundleAnswered(ctx, t.tx, bundleID)
}

func (t *dbBundleTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// Rollback discards the unit. Rolling back after a successful commit is
// a no-op so callers can defer it unconditionally.
func (t *dbBundleTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("tx.Rollback() > %w", err)
	}
	return nil
}
