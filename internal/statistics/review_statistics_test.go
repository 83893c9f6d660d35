package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paulhuff/credo/internal/history"
)

func recordAt(key string, date string) history.ReviewRecord {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	return history.ReviewRecord{CredoKey: key, Quality: 4, ReviewedAt: t.UnixMilli()}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		records       []history.ReviewRecord
		year          int
		month         int
		wantPeriods   []ReviewStatistics
		wantAggregate AggregateStatistics
	}{
		{
			name:        "empty log",
			records:     nil,
			wantPeriods: nil,
		},
		{
			name: "single first review",
			records: []history.ReviewRecord{
				recordAt("kekich_1", "2025-01-15"),
			},
			wantPeriods: []ReviewStatistics{
				{Period: "2025-01", FirstReviewsCount: 1, FirstReviewsUnique: 1},
			},
			wantAggregate: AggregateStatistics{FirstReviewsCount: 1, FirstReviewsUnique: 1},
		},
		{
			name: "repeat reviews in the same month",
			records: []history.ReviewRecord{
				recordAt("kekich_1", "2025-01-15"),
				recordAt("kekich_1", "2025-01-18"),
				recordAt("kekich_1", "2025-01-20"),
			},
			wantPeriods: []ReviewStatistics{
				{
					Period:              "2025-01",
					FirstReviewsCount:   1,
					FirstReviewsUnique:  1,
					RepeatReviewsCount:  2,
					RepeatReviewsUnique: 1,
				},
			},
			wantAggregate: AggregateStatistics{
				FirstReviewsCount:   1,
				FirstReviewsUnique:  1,
				RepeatReviewsCount:  2,
				RepeatReviewsUnique: 1,
			},
		},
		{
			name: "reviews across months",
			records: []history.ReviewRecord{
				recordAt("kekich_1", "2025-01-15"),
				recordAt("paulism_1", "2025-01-20"),
				recordAt("kekich_1", "2025-02-01"),
				recordAt("kekich_2", "2025-02-10"),
			},
			wantPeriods: []ReviewStatistics{
				{Period: "2025-01", FirstReviewsCount: 2, FirstReviewsUnique: 2},
				{Period: "2025-02", FirstReviewsCount: 1, FirstReviewsUnique: 1, RepeatReviewsCount: 1, RepeatReviewsUnique: 1},
			},
			wantAggregate: AggregateStatistics{
				FirstReviewsCount:   3,
				FirstReviewsUnique:  3,
				RepeatReviewsCount:  1,
				RepeatReviewsUnique: 1,
			},
		},
		{
			name: "month filter keeps first-vs-repeat classification global",
			records: []history.ReviewRecord{
				recordAt("kekich_1", "2025-01-15"),
				recordAt("kekich_1", "2025-02-01"),
			},
			year:  2025,
			month: 2,
			wantPeriods: []ReviewStatistics{
				// The February review is a repeat even though January is filtered out.
				{Period: "2025-02", RepeatReviewsCount: 1, RepeatReviewsUnique: 1},
			},
			wantAggregate: AggregateStatistics{RepeatReviewsCount: 1, RepeatReviewsUnique: 1},
		},
		{
			name: "year filter",
			records: []history.ReviewRecord{
				recordAt("kekich_1", "2024-12-31"),
				recordAt("kekich_2", "2025-01-01"),
			},
			year: 2025,
			wantPeriods: []ReviewStatistics{
				{Period: "2025-01", FirstReviewsCount: 1, FirstReviewsUnique: 1},
			},
			wantAggregate: AggregateStatistics{FirstReviewsCount: 1, FirstReviewsUnique: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.records, tt.year, tt.month)
			assert.Equal(t, tt.wantPeriods, got.Periods)
			assert.Equal(t, tt.wantAggregate, got.Aggregate)
		})
	}
}
