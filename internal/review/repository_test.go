package review

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sentenceTestColumns = []string{
	"id", "text", "created_at", "last_answered_at", "due_at", "ease",
	"interval_in_mins", "reps", "is_suspended",
}

func newMockStore(t *testing.T) (*DBStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewDBStore(sqlx.NewDb(db, "sqlite")), mock
}

func TestDBStore_DueSentences(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns due sentences",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(sentenceTestColumns).
					AddRow(1, "erste", now, now, now, 2.5, 1440, 1, false).
					AddRow(2, "zweite", now, now, now, 2.3, 8640, 2, false)
				mock.ExpectQuery(`WHERE due_at < \? AND reps > 0`).
					WithArgs(sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE due_at < \? AND reps > 0`).
					WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.setupMock(mock)

			got, err := store.DueSentences(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)

			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, "erste", got[0].Text)
			assert.Equal(t, 2.5, got[0].Ease)
			assert.True(t, got[0].IntervalInMins.Valid)
			assert.Equal(t, int64(1440), got[0].IntervalInMins.Int64)

			assert.Equal(t, int64(2), got[1].ID)
			assert.Equal(t, 2, got[1].Reps)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_NewSentences(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	store, mock := newMockStore(t)
	rows := sqlmock.NewRows(sentenceTestColumns).
		AddRow(7, "neu", now, nil, now, 2.5, nil, 0, false)
	mock.ExpectQuery(`WHERE reps = 0 AND is_suspended = FALSE`).
		WithArgs(10).
		WillReturnRows(rows)

	got, err := store.NewSentences(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, 0, got[0].Reps)
	assert.False(t, got[0].IntervalInMins.Valid)
	assert.False(t, got[0].LastAnsweredAt.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_InsertSentence(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "inserts with neutral scheduling state",
			text: "ein neuer Satz",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO sentences`).
					WithArgs("ein neuer Satz", sqlmock.AnyArg(), sqlmock.AnyArg(), DefaultEase).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "empty text is rejected before touching the database",
			text:    "   ",
			wantErr: ErrEmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			err := store.InsertSentence(context.Background(), tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_UpdateSentence(t *testing.T) {
	sentence := Sentence{
		ID:             5,
		Ease:           2.3,
		Reps:           3,
		DueAt:          time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		IntervalInMins: sql.NullInt64{Int64: 2500, Valid: true},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "updates by id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE sentences`).
					WithArgs(sentence.LastAnsweredAt, sentence.DueAt, sentence.Ease,
						sentence.IntervalInMins, sentence.Reps, sentence.IsSuspended,
						sentence.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE sentences`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.setupMock(mock)

			err := store.UpdateSentence(context.Background(), &sentence)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_CreateBundle(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO bundles`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	bundleID, err := store.CreateBundle(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[a-zA-Z0-9]{5}$`), bundleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_BeginAnswerTx(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("commits updates and the answered flag together", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		rows := sqlmock.NewRows(sentenceTestColumns).
			AddRow(1, "erste", now, nil, now, 2.5, nil, 0, false)
		mock.ExpectQuery(`FROM bundle_elements`).
			WithArgs("2026-09-01-aaaaa").
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE sentences`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE bundles SET has_been_answered`).
			WithArgs("2026-09-01-aaaaa").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := store.BeginAnswerTx(context.Background())
		require.NoError(t, err)

		sentences, err := tx.SentencesInBundle(context.Background(), "2026-09-01-aaaaa")
		require.NoError(t, err)
		require.Len(t, sentences, 1)

		require.NoError(t, tx.UpdateSentence(context.Background(), &sentences[0]))
		require.NoError(t, tx.MarkBundleAnswered(context.Background(), "2026-09-01-aaaaa"))
		require.NoError(t, tx.Commit())

		// Deferred rollback after a successful commit must be a no-op.
		assert.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback discards the unit", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE bundles SET has_been_answered`).
			WillReturnError(fmt.Errorf("database is locked"))
		mock.ExpectRollback()

		tx, err := store.BeginAnswerTx(context.Background())
		require.NoError(t, err)

		assert.Error(t, tx.MarkBundleAnswered(context.Background(), "2026-09-01-aaaaa"))
		assert.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
