package datasync

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paulhuff/credo/internal/history"
	mock_datasync "github.com/paulhuff/credo/internal/mocks/datasync"
	mock_history "github.com/paulhuff/credo/internal/mocks/history"
	"github.com/paulhuff/credo/internal/scheduler"
	"github.com/paulhuff/credo/internal/state"
)

func TestSyncer_Sync(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)
	record := history.ReviewRecord{
		CredoKey:     "kekich_1",
		Quality:      5,
		ReviewedAt:   now.UnixMilli(),
		IntervalDays: 1,
		EaseFactor:   2.6,
		Repetitions:  1,
	}
	olderRecord := history.ReviewRecord{
		CredoKey:     "kekich_1",
		Quality:      3,
		ReviewedAt:   now.Add(-24 * time.Hour).UnixMilli(),
		IntervalDays: 1,
		EaseFactor:   2.36,
		Repetitions:  1,
	}
	cardState := scheduler.CardState{
		EaseFactor:  2.6,
		Interval:    1,
		Repetitions: 1,
		NextReview:  now.Add(24 * time.Hour).UnixMilli(),
	}
	goal := state.Goal{ID: 100, Name: "ship the report", LinkedCredos: []string{"kekich_1"}, CreatedAt: 100}
	application := state.Application{ID: 101, CredoType: "kekich", CredoID: 1, Note: "used it", CredoText: "text", CreatedAt: 101}

	tests := []struct {
		name     string
		snapshot Snapshot
		opts     SyncOptions
		setup    func(cardSink *mock_datasync.MockCardSink, historyRepo *mock_history.MockRepository, goalSink *mock_datasync.MockGoalSink, applicationSink *mock_datasync.MockApplicationSink)
		want     *SyncResult
		wantErr  string
		wantOut  string
	}{
		{
			name: "everything is new",
			snapshot: Snapshot{
				Cards:        map[string]scheduler.CardState{"kekich_1": cardState},
				History:      []history.ReviewRecord{record},
				Goals:        []state.Goal{goal},
				Applications: []state.Application{application},
			},
			setup: func(cardSink *mock_datasync.MockCardSink, historyRepo *mock_history.MockRepository, goalSink *mock_datasync.MockGoalSink, applicationSink *mock_datasync.MockApplicationSink) {
				historyRepo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
				historyRepo.EXPECT().BatchCreate(gomock.Any(), []history.ReviewRecord{record}).Return(nil)
				cardSink.EXPECT().Upsert(gomock.Any(), "kekich_1", cardState).Return(nil)
				goalSink.EXPECT().Upsert(gomock.Any(), goal).Return(nil)
				applicationSink.EXPECT().Upsert(gomock.Any(), application).Return(nil)
			},
			want: &SyncResult{
				CardsUpserted:        1,
				ReviewLogsNew:        1,
				GoalsUpserted:        1,
				ApplicationsUpserted: 1,
			},
		},
		{
			name: "already-synced review logs are skipped",
			snapshot: Snapshot{
				History: []history.ReviewRecord{olderRecord, record},
			},
			setup: func(cardSink *mock_datasync.MockCardSink, historyRepo *mock_history.MockRepository, goalSink *mock_datasync.MockGoalSink, applicationSink *mock_datasync.MockApplicationSink) {
				historyRepo.EXPECT().FindAll(gomock.Any()).Return([]history.ReviewRecord{olderRecord}, nil)
				historyRepo.EXPECT().BatchCreate(gomock.Any(), []history.ReviewRecord{record}).Return(nil)
			},
			want: &SyncResult{
				ReviewLogsNew:     1,
				ReviewLogsSkipped: 1,
			},
		},
		{
			name: "dry run only reports",
			snapshot: Snapshot{
				Cards:   map[string]scheduler.CardState{"kekich_1": cardState},
				History: []history.ReviewRecord{record},
			},
			opts: SyncOptions{DryRun: true},
			setup: func(cardSink *mock_datasync.MockCardSink, historyRepo *mock_history.MockRepository, goalSink *mock_datasync.MockGoalSink, applicationSink *mock_datasync.MockApplicationSink) {
				historyRepo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
			},
			want: &SyncResult{
				ReviewLogsNew: 1,
			},
			wantOut: "dry run: would sync 1 cards, 1 new review logs, 0 goals, 0 applications\n",
		},
		{
			name:     "loading existing logs fails",
			snapshot: Snapshot{},
			setup: func(cardSink *mock_datasync.MockCardSink, historyRepo *mock_history.MockRepository, goalSink *mock_datasync.MockGoalSink, applicationSink *mock_datasync.MockApplicationSink) {
				historyRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: "historyRepo.FindAll() > connection refused",
		},
		{
			name: "card upsert failure aborts the run",
			snapshot: Snapshot{
				Cards: map[string]scheduler.CardState{"kekich_1": cardState},
			},
			setup: func(cardSink *mock_datasync.MockCardSink, historyRepo *mock_history.MockRepository, goalSink *mock_datasync.MockGoalSink, applicationSink *mock_datasync.MockApplicationSink) {
				historyRepo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
				historyRepo.EXPECT().BatchCreate(gomock.Any(), gomock.Nil()).Return(nil)
				cardSink.EXPECT().Upsert(gomock.Any(), "kekich_1", cardState).Return(errors.New("table missing"))
			},
			wantErr: "cardSink.Upsert(kekich_1) > table missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cardSink := mock_datasync.NewMockCardSink(ctrl)
			historyRepo := mock_history.NewMockRepository(ctrl)
			goalSink := mock_datasync.NewMockGoalSink(ctrl)
			applicationSink := mock_datasync.NewMockApplicationSink(ctrl)
			tt.setup(cardSink, historyRepo, goalSink, applicationSink)

			var out bytes.Buffer
			syncer := NewSyncer(cardSink, historyRepo, goalSink, applicationSink, &out)
			got, err := syncer.Sync(context.Background(), tt.snapshot, tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}
