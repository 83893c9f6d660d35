// Package statistics aggregates the review log into per-month figures
// for progress reporting.
package statistics

import (
	"fmt"
	"sort"
	"time"

	"github.com/paulhuff/credo/internal/history"
)

// ReviewStatistics holds statistics for one month.
type ReviewStatistics struct {
	Period              string // "2025-01"
	FirstReviewsCount   int    // first-ever gradings of a credo
	FirstReviewsUnique  int    // unique credos first graded in the period
	RepeatReviewsCount  int    // subsequent gradings
	RepeatReviewsUnique int    // unique credos regraded in the period
}

// AggregateStatistics holds totals across all periods with global unique counts.
type AggregateStatistics struct {
	FirstReviewsCount   int
	FirstReviewsUnique  int
	RepeatReviewsCount  int
	RepeatReviewsUnique int
}

// StatisticsResult holds both per-period and aggregate statistics.
type StatisticsResult struct {
	Periods   []ReviewStatistics
	Aggregate AggregateStatistics
}

// periodData tracks counts per period
type periodData struct {
	firstTotal   int
	firstUnique  map[string]struct{}
	repeatTotal  int
	repeatUnique map[string]struct{}
}

// Calculate aggregates review records into monthly statistics. Records
// must be ordered oldest first, as kept by the review log. Optional
// year and month filters restrict the reported periods (0 means no
// filter); first-vs-repeat classification always considers the full log.
func Calculate(records []history.ReviewRecord, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalFirstUnique := make(map[string]struct{})
	globalRepeatUnique := make(map[string]struct{})
	seen := make(map[string]struct{})

	for _, record := range records {
		reviewedAt := time.UnixMilli(record.ReviewedAt)
		_, isRepeat := seen[record.CredoKey]
		seen[record.CredoKey] = struct{}{}

		if !matchesFilter(reviewedAt.Year(), int(reviewedAt.Month()), year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", reviewedAt.Year(), int(reviewedAt.Month()))
		if _, ok := stats[period]; !ok {
			stats[period] = &periodData{
				firstUnique:  make(map[string]struct{}),
				repeatUnique: make(map[string]struct{}),
			}
		}

		if isRepeat {
			stats[period].repeatTotal++
			stats[period].repeatUnique[record.CredoKey] = struct{}{}
			globalRepeatUnique[record.CredoKey] = struct{}{}
		} else {
			stats[period].firstTotal++
			stats[period].firstUnique[record.CredoKey] = struct{}{}
			globalFirstUnique[record.CredoKey] = struct{}{}
		}
	}

	return buildResult(stats, globalFirstUnique, globalRepeatUnique)
}

func matchesFilter(recordYear, recordMonth, year, month int) bool {
	if year != 0 && recordYear != year {
		return false
	}
	if month != 0 && recordMonth != month {
		return false
	}
	return true
}

func buildResult(stats map[string]*periodData, globalFirstUnique, globalRepeatUnique map[string]struct{}) StatisticsResult {
	periods := make([]string, 0, len(stats))
	for period := range stats {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	result := StatisticsResult{}
	for _, period := range periods {
		data := stats[period]
		result.Periods = append(result.Periods, ReviewStatistics{
			Period:              period,
			FirstReviewsCount:   data.firstTotal,
			FirstReviewsUnique:  len(data.firstUnique),
			RepeatReviewsCount:  data.repeatTotal,
			RepeatReviewsUnique: len(data.repeatUnique),
		})
		result.Aggregate.FirstReviewsCount += data.firstTotal
		result.Aggregate.RepeatReviewsCount += data.repeatTotal
	}
	result.Aggregate.FirstReviewsUnique = len(globalFirstUnique)
	result.Aggregate.RepeatReviewsUnique = len(globalRepeatUnique)
	return result
}
