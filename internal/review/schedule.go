package review

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	DefaultEase = 2.5
	MinEase     = 1.3
	MaxEase     = 3.5

	oneDayInMins  = 24 * 60
	sixDaysInMins = 6 * oneDayInMins
)

func easeDelta(score Score) float64 {
	switch score {
	case Hard:
		return -0.2
	case Easy:
		return 0.2
	}
	return 0
}

// UpdateEase applies the score's ease delta and clamps the result to
// [MinEase, MaxEase].
func UpdateEase(ease float64, score Score) float64 {
	ease += easeDelta(score)
	if ease < MinEase {
		return MinEase
	}
	if ease > MaxEase {
		return MaxEase
	}
	return ease
}

// Schedule returns the sentence's state after answering it with score at
// time now. The interval branches on the pre-increment repetition count:
// the first answer comes due again in one day, the second in six days,
// and later answers multiply the previous interval by the already
// updated ease, truncated to whole minutes.
func Schedule(s Sentence, score Score, now time.Time) (Sentence, error) {
	s.Ease = UpdateEase(s.Ease, score)

	var interval int64
	switch {
	case s.Reps == 0:
		interval = oneDayInMins
	case s.Reps == 1:
		interval = sixDaysInMins
	default:
		if !s.IntervalInMins.Valid {
			return Sentence{}, fmt.Errorf("sentence %d has %d reps but no interval", s.ID, s.Reps)
		}
		interval = int64(float64(s.IntervalInMins.Int64) * s.Ease)
	}

	s.IntervalInMins = sql.NullInt64{Int64: interval, Valid: true}
	s.Reps++
	s.LastAnsweredAt = sql.NullTime{Time: now, Valid: true}
	s.DueAt = now.Add(time.Duration(interval) * time.Minute)

	return s, nil
}
