package datasync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/paulhuff/credo/internal/scheduler"
	"github.com/paulhuff/credo/internal/state"
)

// DBCardSink implements CardSink using MySQL.
type DBCardSink struct {
	db *sqlx.DB
}

// NewDBCardSink creates a new DBCardSink.
func NewDBCardSink(db *sqlx.DB) *DBCardSink {
	return &DBCardSink{db: db}
}

// Upsert writes a card state keyed by credo key.
func (s *DBCardSink) Upsert(ctx context.Context, credoKey string, cardState scheduler.CardState) error {
	query := `INSERT INTO card_states (credo_key, ease_factor, interval_days, repetitions, next_review, last_review)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			ease_factor = VALUES(ease_factor),
			interval_days = VALUES(interval_days),
			repetitions = VALUES(repetitions),
			next_review = VALUES(next_review),
			last_review = VALUES(last_review)`
	if _, err := s.db.ExecContext(ctx, query,
		credoKey, cardState.EaseFactor, cardState.Interval, cardState.Repetitions, cardState.NextReview, cardState.LastReview,
	); err != nil {
		return fmt.Errorf("upsert card state %s: %w", credoKey, err)
	}
	return nil
}

// DBGoalSink implements GoalSink using MySQL. Linked credo keys are
// stored as a JSON array in a TEXT column.
type DBGoalSink struct {
	db *sqlx.DB
}

// NewDBGoalSink creates a new DBGoalSink.
func NewDBGoalSink(db *sqlx.DB) *DBGoalSink {
	return &DBGoalSink{db: db}
}

// Upsert writes a goal keyed by its ID.
func (s *DBGoalSink) Upsert(ctx context.Context, goal state.Goal) error {
	linked, err := json.Marshal(goal.LinkedCredos)
	if err != nil {
		return fmt.Errorf("marshal linked credos for goal %d: %w", goal.ID, err)
	}

	query := `INSERT INTO goals (id, name, target_date, linked_credos, created_at_ms)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			target_date = VALUES(target_date),
			linked_credos = VALUES(linked_credos)`
	if _, err := s.db.ExecContext(ctx, query,
		goal.ID, goal.Name, goal.TargetDate, string(linked), goal.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert goal %d: %w", goal.ID, err)
	}
	return nil
}

// DBApplicationSink implements ApplicationSink using MySQL.
type DBApplicationSink struct {
	db *sqlx.DB
}

// NewDBApplicationSink creates a new DBApplicationSink.
func NewDBApplicationSink(db *sqlx.DB) *DBApplicationSink {
	return &DBApplicationSink{db: db}
}

// Upsert writes an application entry keyed by its ID. Application
// entries are immutable, so an existing row is left as is.
func (s *DBApplicationSink) Upsert(ctx context.Context, application state.Application) error {
	query := `INSERT INTO applications (id, credo_type, credo_id, note, credo_text, created_at_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`
	if _, err := s.db.ExecContext(ctx, query,
		application.ID, string(application.CredoType), application.CredoID, application.Note, application.CredoText, application.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert application %d: %w", application.ID, err)
	}
	return nil
}
