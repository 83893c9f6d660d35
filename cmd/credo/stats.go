package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paulhuff/credo/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show review statistics and the current streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			st, _, err := openState()
			if err != nil {
				return err
			}

			stats := st.Stats()
			fmt.Printf("Streak: %d days\n", stats.Streak)
			fmt.Printf("Total reviews: %d\n", stats.TotalReviews)
			fmt.Printf("Mastered: %d of %d\n", st.MasteredCount(), st.Catalog().Len())
			fmt.Printf("Due now: %d\n", len(st.DueCards(time.Now())))
			if stats.LastReview != nil {
				fmt.Printf("Last review: %s\n", time.UnixMilli(*stats.LastReview).Format("2006-01-02"))
			}

			result := statistics.Calculate(st.History(), year, month)
			if len(result.Periods) == 0 {
				return nil
			}

			fmt.Println("\nMonth     First (unique)   Repeat (unique)")
			for _, period := range result.Periods {
				fmt.Printf("%-9s %5d (%d)   %8d (%d)\n",
					period.Period,
					period.FirstReviewsCount, period.FirstReviewsUnique,
					period.RepeatReviewsCount, period.RepeatReviewsUnique,
				)
			}
			fmt.Printf("%-9s %5d (%d)   %8d (%d)\n",
				"Total",
				result.Aggregate.FirstReviewsCount, result.Aggregate.FirstReviewsUnique,
				result.Aggregate.RepeatReviewsCount, result.Aggregate.RepeatReviewsUnique,
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	return cmd
}
