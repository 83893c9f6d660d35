// Package history provides the append-only review log.
package history

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/paulhuff/credo/internal/database"
)

// ReviewRecord is one grading event. Records are append-only; the file
// store keeps them under the "history" key and `credo db sync` mirrors
// them into MySQL for analysis.
type ReviewRecord struct {
	CredoKey     string  `json:"credoKey" db:"credo_key"`
	Quality      int     `json:"quality" db:"quality"`
	ReviewedAt   int64   `json:"reviewedAt" db:"reviewed_at"`
	IntervalDays int     `json:"intervalDays" db:"interval_days"`
	EaseFactor   float64 `json:"easeFactor" db:"ease_factor"`
	Repetitions  int     `json:"repetitions" db:"repetitions"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history

// Repository defines operations for managing review logs.
type Repository interface {
	FindAll(ctx context.Context) ([]ReviewRecord, error)
	BatchCreate(ctx context.Context, records []ReviewRecord) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all review records, oldest first.
func (r *DBRepository) FindAll(ctx context.Context) ([]ReviewRecord, error) {
	var records []ReviewRecord
	query := "SELECT credo_key, quality, reviewed_at, interval_days, ease_factor, repetitions FROM review_logs ORDER BY reviewed_at, id"
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("load all review logs: %w", err)
	}
	return records, nil
}

// BatchCreate inserts multiple review records in a single transaction using a multi-row INSERT.
func (r *DBRepository) BatchCreate(ctx context.Context, records []ReviewRecord) error {
	if len(records) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"credo_key", "quality", "reviewed_at", "interval_days", "ease_factor", "repetitions"}
		query := database.BuildMultiRowInsert("review_logs", columns, len(records))

		var args []interface{}
		for _, record := range records {
			args = append(args, record.CredoKey, record.Quality, record.ReviewedAt, record.IntervalDays, record.EaseFactor, record.Repetitions)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert review logs: %w", err)
		}
		return nil
	})
}
