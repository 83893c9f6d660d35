package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newApplicationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "application",
		Short: "Log how credos were applied in practice",
	}
	cmd.AddCommand(newApplicationListCommand())
	cmd.AddCommand(newApplicationLogCommand())
	return cmd
}

func newApplicationListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List application entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}

			applications := st.Applications()
			if len(applications) == 0 {
				fmt.Println("No applications logged yet.")
				return nil
			}
			for i := len(applications) - 1; i >= 0; i-- {
				application := applications[i]
				date := time.UnixMilli(application.CreatedAt).Format("2006-01-02")
				fmt.Printf("%s  %s\n    %s\n", date, application.CredoText, application.Note)
			}
			return nil
		},
	}
}

func newApplicationLogCommand() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "log <key>",
		Short: "Log an application of a credo, e.g. kekich_12",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(note) == "" {
				return fmt.Errorf("--note is required")
			}

			t, id, err := parseCredoRef(args[0])
			if err != nil {
				return err
			}

			st, _, err := openState()
			if err != nil {
				return err
			}

			application, err := st.AddApplication(t, id, strings.TrimSpace(note), time.Now())
			if err != nil {
				return fmt.Errorf("state.AddApplication() > %w", err)
			}
			fmt.Printf("Logged application %d for %s.\n", application.ID, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "How the principle was applied")
	return cmd
}
