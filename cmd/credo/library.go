package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/paulhuff/credo/internal/credo"
	"github.com/paulhuff/credo/internal/review"
	"github.com/paulhuff/credo/internal/state"
)

// typeFilter is a --type flag value restricted to the catalog variants.
type typeFilter string

func (f *typeFilter) Set(val string) error {
	for _, t := range allTypeFilters {
		if val == string(t) {
			*f = t
			return nil
		}
	}
	return fmt.Errorf("invalid credo type: %s. Possible values are %v", val, allTypeFilters)
}

func (f typeFilter) String() string {
	return string(f)
}

func (f *typeFilter) Type() string {
	return "type"
}

const (
	typeFilterAll     typeFilter = ""
	typeFilterKekich  typeFilter = typeFilter(credo.TypeKekich)
	typeFilterPaulism typeFilter = typeFilter(credo.TypePaulism)
)

var (
	_              pflag.Value = (*typeFilter)(nil)
	allTypeFilters             = []typeFilter{typeFilterKekich, typeFilterPaulism}
)

func newLibraryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Browse the credo catalog",
	}
	cmd.AddCommand(newLibraryListCommand())
	cmd.AddCommand(newLibrarySearchCommand())
	cmd.AddCommand(newLibraryShowCommand())
	return cmd
}

// printCredoList writes one line per credo with its review-status marker:
// "*" mastered, "!" due now.
func printCredoList(st *state.State, credos []credo.Credo, filter typeFilter) {
	now := time.Now()
	cards := st.Cards()
	for _, c := range credos {
		if filter != typeFilterAll && string(c.Type) != string(filter) {
			continue
		}

		marker := " "
		cardState := review.Resolve(c.Key(), cards, now)
		switch {
		case review.Mastered(cardState):
			marker = "*"
		case cardState.NextReview <= now.UnixMilli():
			marker = "!"
		}
		fmt.Printf("%s %-12s %s\n", marker, c.Key(), c.Summary())
	}
}

func newLibraryListCommand() *cobra.Command {
	var search string
	filter := typeFilterAll

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credos with their review status",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}

			printCredoList(st, st.Catalog().Search(search), filter)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by a case-insensitive search term")
	cmd.Flags().Var(&filter, "type", fmt.Sprintf("Filter by credo type. Possible values are %v", allTypeFilters))
	return cmd
}

func newLibrarySearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search credos by text, category, title, or truth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}

			matched := st.Catalog().Search(args[0])
			if len(matched) == 0 {
				fmt.Printf("No credos match %q.\n", args[0])
				return nil
			}
			printCredoList(st, matched, typeFilterAll)
			return nil
		},
	}
}

func newLibraryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show one credo and its scheduling state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, id, err := parseCredoRef(args[0])
			if err != nil {
				return err
			}

			st, _, err := openState()
			if err != nil {
				return err
			}

			c, ok := st.Catalog().Find(t, id)
			if !ok {
				return fmt.Errorf("unknown credo %s", args[0])
			}

			fmt.Println(c.Front())
			if c.Type == credo.TypePaulism {
				for _, item := range c.Code {
					fmt.Printf("  - %s\n", item)
				}
			} else {
				fmt.Printf("Category: %s\n", c.Category)
			}

			now := time.Now()
			cardState := st.CardState(t, id, now)
			fmt.Printf("\nRepetitions: %d  Interval: %d days  Ease: %.2f\n", cardState.Repetitions, cardState.Interval, cardState.EaseFactor)
			if cardState.LastReview != nil {
				fmt.Printf("Last review: %s\n", time.UnixMilli(*cardState.LastReview).Format("2006-01-02"))
			}
			if cardState.NextReview <= now.UnixMilli() {
				fmt.Println("Due now.")
			} else {
				fmt.Printf("Next review: %s\n", time.UnixMilli(cardState.NextReview).Format("2006-01-02"))
			}
			return nil
		},
	}
}
