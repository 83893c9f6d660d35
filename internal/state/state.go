// Package state owns all mutable application state: card scheduling
// records, goals, application logs, review history, and the streak
// aggregate. It is the single writer to the store; every consumer goes
// through its explicit read/write methods.
package state

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/paulhuff/credo/internal/credo"
	"github.com/paulhuff/credo/internal/history"
	"github.com/paulhuff/credo/internal/review"
	"github.com/paulhuff/credo/internal/scheduler"
	"github.com/paulhuff/credo/internal/store"
)

// Store keys.
const (
	keyCards        = "cards"
	keyGoals        = "goals"
	keyApplications = "applications"
	keyStats        = "stats"
	keyHistory      = "history"
)

// State is the top-level application state controller. It is not safe
// for concurrent use; grading events arrive serially from the CLI.
type State struct {
	store   store.Store
	catalog *credo.Catalog

	cards        map[string]scheduler.CardState
	goals        []Goal
	applications []Application
	stats        review.Stats
	history      []history.ReviewRecord

	lastID int64
}

// New loads all state from the store, falling back to empty defaults
// for missing or malformed entries.
func New(s store.Store, catalog *credo.Catalog) (*State, error) {
	st := &State{
		store:   s,
		catalog: catalog,
		cards:   map[string]scheduler.CardState{},
	}

	if _, err := s.Get(keyCards, &st.cards); err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	if st.cards == nil {
		st.cards = map[string]scheduler.CardState{}
	}
	if _, err := s.Get(keyGoals, &st.goals); err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if _, err := s.Get(keyApplications, &st.applications); err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}
	if _, err := s.Get(keyStats, &st.stats); err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	if _, err := s.Get(keyHistory, &st.history); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	return st, nil
}

// Catalog returns the immutable content catalog.
func (s *State) Catalog() *credo.Catalog {
	return s.catalog
}

// CardState resolves the scheduling state for a credo without mutating
// anything; unreviewed credos get the immediately-due default.
func (s *State) CardState(t credo.Type, id int, now time.Time) scheduler.CardState {
	return review.Resolve(credo.Key(t, id), s.cards, now)
}

// DueCards returns the current due queue, earliest due first.
func (s *State) DueCards(now time.Time) []review.Card {
	return review.DueCards(s.catalog, s.cards, now)
}

// GradeCard applies one grading event: the card's next schedule, the
// streak/statistics update, and a review-log append, all persisted.
func (s *State) GradeCard(t credo.Type, id int, quality int, now time.Time) (scheduler.CardState, error) {
	if _, ok := s.catalog.Find(t, id); !ok {
		return scheduler.CardState{}, fmt.Errorf("unknown credo %s", credo.Key(t, id))
	}

	key := credo.Key(t, id)
	graded := scheduler.Grade(review.Resolve(key, s.cards, now), quality, now)
	s.cards[key] = graded
	s.stats = review.UpdateStats(s.stats, now)
	s.history = append(s.history, history.ReviewRecord{
		CredoKey:     key,
		Quality:      quality,
		ReviewedAt:   now.UnixMilli(),
		IntervalDays: graded.Interval,
		EaseFactor:   graded.EaseFactor,
		Repetitions:  graded.Repetitions,
	})

	s.persist(keyCards, s.cards)
	s.persist(keyStats, s.stats)
	s.persist(keyHistory, s.history)
	return graded, nil
}

// Stats returns the current review aggregate.
func (s *State) Stats() review.Stats {
	return s.stats
}

// History returns the review log, oldest first.
func (s *State) History() []history.ReviewRecord {
	return s.history
}

// Cards returns a copy of the stored card states keyed by composite key.
func (s *State) Cards() map[string]scheduler.CardState {
	cards := make(map[string]scheduler.CardState, len(s.cards))
	for key, state := range s.cards {
		cards[key] = state
	}
	return cards
}

// MasteredCount counts credos whose stored state reached the mastery threshold.
func (s *State) MasteredCount() int {
	return review.MasteredCount(s.cards)
}

// Goals returns all goals in creation order.
func (s *State) Goals() []Goal {
	return s.goals
}

// AddGoal creates a goal and persists the collection.
func (s *State) AddGoal(name, targetDate string, linkedCredos []string, now time.Time) Goal {
	id := s.allocateID(now)
	goal := Goal{
		ID:           id,
		Name:         name,
		TargetDate:   targetDate,
		LinkedCredos: linkedCredos,
		CreatedAt:    id,
	}
	s.goals = append(s.goals, goal)
	s.persist(keyGoals, s.goals)
	return goal
}

// UpdateGoal replaces the goal with the same ID.
func (s *State) UpdateGoal(updated Goal) error {
	for i, goal := range s.goals {
		if goal.ID == updated.ID {
			s.goals[i] = updated
			s.persist(keyGoals, s.goals)
			return nil
		}
	}
	return fmt.Errorf("goal %d not found", updated.ID)
}

// DeleteGoal removes a goal by ID. Deletion cascades to nothing.
func (s *State) DeleteGoal(id int64) error {
	for i, goal := range s.goals {
		if goal.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.persist(keyGoals, s.goals)
			return nil
		}
	}
	return fmt.Errorf("goal %d not found", id)
}

// Applications returns the application log, oldest first.
func (s *State) Applications() []Application {
	return s.applications
}

// AddApplication appends an application note, snapshotting the credo's
// text so later catalog edits do not alter the record.
func (s *State) AddApplication(t credo.Type, id int, note string, now time.Time) (Application, error) {
	c, ok := s.catalog.Find(t, id)
	if !ok {
		return Application{}, fmt.Errorf("unknown credo %s", credo.Key(t, id))
	}

	snapshot := c.Text
	if t == credo.TypePaulism {
		snapshot = c.Title
	}

	appID := s.allocateID(now)
	application := Application{
		ID:        appID,
		CredoType: t,
		CredoID:   id,
		Note:      note,
		CredoText: snapshot,
		CreatedAt: appID,
	}
	s.applications = append(s.applications, application)
	s.persist(keyApplications, s.applications)
	return application, nil
}

// allocateID returns a millisecond-timestamp identifier, bumped by one
// when two allocations land in the same millisecond.
func (s *State) allocateID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes one store entry. On failure the in-memory state stays
// authoritative for the session; only durability across restarts is at risk.
func (s *State) persist(key string, value any) {
	if err := s.store.Set(key, value); err != nil {
		slog.Error("failed to persist state, keeping in-memory copy", "key", key, "error", err)
	}
}
