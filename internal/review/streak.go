package review

import "time"

// Stats is the singleton review aggregate.
// JSON field names match the persisted store format.
type Stats struct {
	Streak       int    `json:"streak"`
	LastReview   *int64 `json:"lastReview"`
	TotalReviews int    `json:"totalReviews"`
}

const dayFormat = "2006-01-02"

// UpdateStats advances the aggregate after one grading event, whatever
// the grade. Multiple reviews on the same calendar day leave the streak
// unchanged; a review on the day after the last one extends it; anything
// else (including the first review ever) restarts it at 1.
//
// Day boundaries are local-time calendar days, so the streak is
// sensitive to timezone and host clock changes. A multi-day gap is
// indistinguishable from a two-day gap; only the most recent review
// time is kept.
func UpdateStats(stats Stats, now time.Time) Stats {
	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)

	lastDay := ""
	if stats.LastReview != nil {
		lastDay = time.UnixMilli(*stats.LastReview).Format(dayFormat)
	}

	streak := stats.Streak
	if lastDay != today {
		if lastDay == yesterday {
			streak++
		} else {
			streak = 1
		}
	}

	nowMs := now.UnixMilli()
	return Stats{
		Streak:       streak,
		LastReview:   &nowMs,
		TotalReviews: stats.TotalReviews + 1,
	}
}
