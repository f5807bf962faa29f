// Package review provides the sentence domain model, the scheduling
// algorithm and the persistence contract for review bundles.
package review

import (
	"database/sql"
	"time"
)

// Sentence is one reviewable piece of text together with its scheduling
// state.
//
// Reps, IntervalInMins and LastAnsweredAt move together: a sentence with
// Reps == 0 has never been answered and carries neither an interval nor
// a last-answered time. Once Reps >= 1 the interval must be present; its
// absence at that point is a data-integrity fault, not a normal state.
type Sentence struct {
	ID   int64  `db:"id"`
	Text string `db:"text"`

	CreatedAt time.Time `db:"created_at"`

	LastAnsweredAt sql.NullTime  `db:"last_answered_at"`
	DueAt          time.Time     `db:"due_at"`
	Ease           float64       `db:"ease"`
	IntervalInMins sql.NullInt64 `db:"interval_in_mins"`
	Reps           int           `db:"reps"`

	IsSuspended bool `db:"is_suspended"`
}

// Suspend excludes the sentence from both due and new selection. Every
// other field is left untouched. There is no unsuspend operation.
func (s *Sentence) Suspend() {
	s.IsSuspended = true
}

// Bundle is a named collection of sentences selected for one review
// session. It is sealed by the answer workflow setting HasBeenAnswered.
type Bundle struct {
	ID              string    `db:"id"`
	CreatedAt       time.Time `db:"created_at"`
	HasBeenAnswered bool      `db:"has_been_answered"`
}
