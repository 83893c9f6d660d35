package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paulhuff/credo/internal/cli"
)

func newReviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Start an interactive review session over the due cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}

			session := cli.NewReviewSessionCLI(st, time.Now)
			if err := session.Run(cmd.Context(), session); err != nil {
				return fmt.Errorf("session.Run() > %w", err)
			}
			return nil
		},
	}
	cmd.AddCommand(newReviewListCommand())
	return cmd
}

func newReviewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the due queue without starting a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}

			due := st.DueCards(time.Now())
			if len(due) == 0 {
				fmt.Println("All caught up! No cards due for review.")
				return nil
			}
			for _, card := range due {
				fmt.Printf("%-12s %s\n", card.Credo.Key(), card.Credo.Summary())
			}
			fmt.Printf("\n%d cards due.\n", len(due))
			return nil
		},
	}
}
