// Package review builds the due-card queue and maintains review statistics.
package review

import (
	"sort"
	"time"

	"github.com/paulhuff/credo/internal/credo"
	"github.com/paulhuff/credo/internal/scheduler"
)

// Card pairs a credo with its current scheduling state.
type Card struct {
	Credo credo.Credo
	State scheduler.CardState
}

// Resolve returns the stored state for a composite key, or the default
// state when none exists. The backing map is never mutated; a lazily
// defaulted state is only persisted after a grading event.
func Resolve(key string, states map[string]scheduler.CardState, now time.Time) scheduler.CardState {
	if state, ok := states[key]; ok {
		return state
	}
	return scheduler.DefaultCardState(now)
}

// DueCards returns every card whose next review time has passed,
// earliest due first. Ties keep catalog order, so repeated calls with
// an unchanged state map return identical sequences.
func DueCards(catalog *credo.Catalog, states map[string]scheduler.CardState, now time.Time) []Card {
	nowMs := now.UnixMilli()

	var due []Card
	for _, c := range catalog.All() {
		state := Resolve(c.Key(), states, now)
		if state.NextReview <= nowMs {
			due = append(due, Card{Credo: c, State: state})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].State.NextReview < due[j].State.NextReview
	})
	return due
}

// MasteredThreshold is the repetition count at which a card counts as mastered.
const MasteredThreshold = 5

// Mastered reports whether a card state has reached the mastery threshold.
func Mastered(state scheduler.CardState) bool {
	return state.Repetitions >= MasteredThreshold
}

// MasteredCount counts stored card states at or above the mastery threshold.
func MasteredCount(states map[string]scheduler.CardState) int {
	count := 0
	for _, state := range states {
		if Mastered(state) {
			count++
		}
	}
	return count
}
