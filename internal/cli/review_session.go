package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/paulhuff/credo/internal/credo"
	"github.com/paulhuff/credo/internal/review"
	"github.com/paulhuff/credo/internal/state"
)

// ReviewSessionCLI manages the interactive review session over the due queue
type ReviewSessionCLI struct {
	*InteractiveReviewCLI
	state    *state.State
	cards    []review.Card
	total    int
	reviewed int
	clock    func() time.Time
}

// NewReviewSessionCLI creates a review session over the cards due now.
func NewReviewSessionCLI(st *state.State, clock func() time.Time) *ReviewSessionCLI {
	cards := st.DueCards(clock())
	return &ReviewSessionCLI{
		InteractiveReviewCLI: newInteractiveReviewCLI(),
		state:                st,
		cards:                cards,
		total:                len(cards),
		clock:                clock,
	}
}

// getNextCard returns the next card or nil if no more cards
func (r *ReviewSessionCLI) getNextCard() *review.Card {
	if len(r.cards) == 0 {
		return nil
	}
	return &r.cards[0]
}

// removeCurrentCard removes the current card from the session
func (r *ReviewSessionCLI) removeCurrentCard() {
	if len(r.cards) > 0 {
		r.cards = r.cards[1:]
	}
}

func (r *ReviewSessionCLI) Session(ctx context.Context) error {
	currentCard := r.getNextCard()
	if currentCard == nil {
		if r.reviewed == 0 {
			fmt.Fprintln(r.stdoutWriter, "All caught up! No cards due for review.")
		} else {
			fmt.Fprintf(r.stdoutWriter, "Session complete: %d cards reviewed.\n", r.reviewed)
		}
		return errEnd
	}

	c := currentCard.Credo
	fmt.Fprintf(r.stdoutWriter, "[%d of %d] ", r.total-len(r.cards)+1, r.total)
	if c.Type == credo.TypeKekich {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "Credo #%d (%s)\n", c.ID, c.Category)
		fmt.Fprintf(r.stdoutWriter, "%s\n\n", c.Text)
	} else {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "Paulism #%d: %s\n", c.ID, c.Title)
		_, _ = r.italic.Fprintf(r.stdoutWriter, "%q\n", c.Truth)

		fmt.Fprint(r.stdoutWriter, "Press Enter to show the code...")
		if _, err := r.readLine(); err != nil {
			return err
		}
		fmt.Fprintln(r.stdoutWriter, "The Code:")
		for _, item := range c.Code {
			fmt.Fprintf(r.stdoutWriter, "  - %s\n", item)
		}
		fmt.Fprintln(r.stdoutWriter)
	}

	for {
		fmt.Fprint(r.stdoutWriter, "How well did you know this? [1 Again / 3 Hard / 4 Good / 5 Easy / a apply / q quit]: ")
		input, err := r.readLine()
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "q":
			fmt.Fprintf(r.stdoutWriter, "Session ended: %d cards reviewed.\n", r.reviewed)
			return errEnd
		case "a":
			if err := r.logApplication(c); err != nil {
				return err
			}
			continue
		}

		quality, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || quality < 0 || quality > 5 {
			fmt.Fprintln(r.stdoutWriter, "Enter a grade between 0 and 5, a, or q.")
			continue
		}

		graded, err := r.state.GradeCard(c.Type, c.ID, quality, r.clock())
		if err != nil {
			return fmt.Errorf("state.GradeCard(%s) > %w", c.Key(), err)
		}

		if quality >= 3 {
			color.Green("Next review in %s.", formatDays(graded.Interval))
		} else {
			color.Red("We'll repeat this one tomorrow.")
		}
		fmt.Fprintln(r.stdoutWriter)

		r.reviewed++
		r.removeCurrentCard()
		return nil
	}
}

// logApplication records how the credo was applied today.
func (r *ReviewSessionCLI) logApplication(c credo.Credo) error {
	fmt.Fprint(r.stdoutWriter, "How did you apply this principle? ")
	note, err := r.readLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(note) == "" {
		return nil
	}
	if _, err := r.state.AddApplication(c.Type, c.ID, strings.TrimSpace(note), r.clock()); err != nil {
		return fmt.Errorf("state.AddApplication(%s) > %w", c.Key(), err)
	}
	fmt.Fprintln(r.stdoutWriter, "Application logged.")
	return nil
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
