// Package scheduler implements the SM-2 spaced repetition algorithm for credo cards.
package scheduler

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// DayMillis is one day in milliseconds, the unit of review intervals.
	DayMillis = int64(24 * time.Hour / time.Millisecond)
)

// CardState is the scheduling record for a single credo.
// JSON field names match the persisted store format.
type CardState struct {
	EaseFactor  float64 `json:"easeFactor"`
	Interval    int     `json:"interval"`
	Repetitions int     `json:"repetitions"`
	NextReview  int64   `json:"nextReview"`
	LastReview  *int64  `json:"lastReview"`
}

// DefaultCardState returns the state of a never-reviewed card.
// NextReview is set to now, so a fresh card is immediately due.
func DefaultCardState(now time.Time) CardState {
	return CardState{
		EaseFactor:  DefaultEaseFactor,
		Interval:    0,
		Repetitions: 0,
		NextReview:  now.UnixMilli(),
		LastReview:  nil,
	}
}

// Grade computes the next state of a card after a review.
// Quality is the user's recall grade: 0 (blackout) to 5 (perfect).
// Quality >= 3 counts as a successful recall and grows the interval
// (1 day, 6 days, then round(interval * ease)); below 3 the card
// drops back to a 1-day interval and the repetition streak resets.
// The ease factor update is applied on both paths and never goes
// below MinEaseFactor. Out-of-range quality values are not clamped;
// the arithmetic accepts them as-is.
//
// Grade is pure: it reads only its arguments and persists nothing.
func Grade(state CardState, quality int, now time.Time) CardState {
	ease := state.EaseFactor
	interval := state.Interval
	repetitions := state.Repetitions

	if quality >= 3 {
		switch repetitions {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			interval = int(math.Round(float64(interval) * ease))
		}
		repetitions++
	} else {
		repetitions = 0
		interval = 1
	}

	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	nowMs := now.UnixMilli()
	return CardState{
		EaseFactor:  ease,
		Interval:    interval,
		Repetitions: repetitions,
		NextReview:  nowMs + int64(interval)*DayMillis,
		LastReview:  &nowMs,
	}
}
