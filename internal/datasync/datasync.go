// Package datasync pushes the file-store state into the optional MySQL
// mirror used for ad-hoc analysis.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/paulhuff/credo/internal/history"
	"github.com/paulhuff/credo/internal/scheduler"
	"github.com/paulhuff/credo/internal/state"
)

// Snapshot is the full file-store state handed to a sync run.
type Snapshot struct {
	Cards        map[string]scheduler.CardState
	History      []history.ReviewRecord
	Goals        []state.Goal
	Applications []state.Application
}

// SyncResult tracks counts for each sync operation.
type SyncResult struct {
	CardsUpserted        int
	ReviewLogsNew        int
	ReviewLogsSkipped    int
	GoalsUpserted        int
	ApplicationsUpserted int
}

// SyncOptions controls sync behavior.
type SyncOptions struct {
	DryRun bool
}

//go:generate mockgen -source=datasync.go -destination=../mocks/datasync/mock_sinks.go -package=mock_datasync

// CardSink persists card scheduling snapshots.
type CardSink interface {
	Upsert(ctx context.Context, credoKey string, cardState scheduler.CardState) error
}

// GoalSink persists goals.
type GoalSink interface {
	Upsert(ctx context.Context, goal state.Goal) error
}

// ApplicationSink persists application log entries.
type ApplicationSink interface {
	Upsert(ctx context.Context, application state.Application) error
}

// Syncer writes a snapshot into the database sinks.
type Syncer struct {
	cardSink        CardSink
	historyRepo     history.Repository
	goalSink        GoalSink
	applicationSink ApplicationSink
	writer          io.Writer
}

// NewSyncer creates a new Syncer.
func NewSyncer(cardSink CardSink, historyRepo history.Repository, goalSink GoalSink, applicationSink ApplicationSink, writer io.Writer) *Syncer {
	return &Syncer{
		cardSink:        cardSink,
		historyRepo:     historyRepo,
		goalSink:        goalSink,
		applicationSink: applicationSink,
		writer:          writer,
	}
}

// Sync mirrors the snapshot into the database. Review logs already in
// the database (same credo key and review time) are skipped; cards,
// goals, and applications are upserted by primary key, so a rerun is
// idempotent.
func (s *Syncer) Sync(ctx context.Context, snapshot Snapshot, opts SyncOptions) (*SyncResult, error) {
	var result SyncResult

	existing, err := s.historyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("historyRepo.FindAll() > %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		known[reviewLogKey(record)] = struct{}{}
	}

	var newRecords []history.ReviewRecord
	for _, record := range snapshot.History {
		if _, ok := known[reviewLogKey(record)]; ok {
			result.ReviewLogsSkipped++
			continue
		}
		newRecords = append(newRecords, record)
	}
	result.ReviewLogsNew = len(newRecords)

	if opts.DryRun {
		fmt.Fprintf(s.writer, "dry run: would sync %d cards, %d new review logs, %d goals, %d applications\n",
			len(snapshot.Cards), len(newRecords), len(snapshot.Goals), len(snapshot.Applications))
		return &result, nil
	}

	if err := s.historyRepo.BatchCreate(ctx, newRecords); err != nil {
		return nil, fmt.Errorf("historyRepo.BatchCreate() > %w", err)
	}

	for credoKey, cardState := range snapshot.Cards {
		if err := s.cardSink.Upsert(ctx, credoKey, cardState); err != nil {
			return nil, fmt.Errorf("cardSink.Upsert(%s) > %w", credoKey, err)
		}
		result.CardsUpserted++
	}

	for _, goal := range snapshot.Goals {
		if err := s.goalSink.Upsert(ctx, goal); err != nil {
			return nil, fmt.Errorf("goalSink.Upsert(%d) > %w", goal.ID, err)
		}
		result.GoalsUpserted++
	}

	for _, application := range snapshot.Applications {
		if err := s.applicationSink.Upsert(ctx, application); err != nil {
			return nil, fmt.Errorf("applicationSink.Upsert(%d) > %w", application.ID, err)
		}
		result.ApplicationsUpserted++
	}

	return &result, nil
}

func reviewLogKey(record history.ReviewRecord) string {
	return fmt.Sprintf("%s@%d", record.CredoKey, record.ReviewedAt)
}
