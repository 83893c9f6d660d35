package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newGoalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals linked to credos",
	}
	cmd.AddCommand(newGoalListCommand())
	cmd.AddCommand(newGoalAddCommand())
	cmd.AddCommand(newGoalUpdateCommand())
	cmd.AddCommand(newGoalDeleteCommand())
	return cmd
}

func newGoalListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}

			goals := st.Goals()
			if len(goals) == 0 {
				fmt.Println("No goals yet.")
				return nil
			}
			for _, goal := range goals {
				target := ""
				if goal.TargetDate != "" {
					target = fmt.Sprintf(" (target %s)", goal.TargetDate)
				}
				fmt.Printf("%d: %s%s\n", goal.ID, goal.Name, target)
				for _, key := range goal.LinkedCredos {
					label := key
					if c, ok := st.Catalog().FindByKey(key); ok {
						label = c.Summary()
					}
					fmt.Printf("   - %s\n", label)
				}
			}
			return nil
		},
	}
}

func newGoalAddCommand() *cobra.Command {
	var name, targetDate string
	var links []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}

			st, _, err := openState()
			if err != nil {
				return err
			}
			for _, key := range links {
				if _, ok := st.Catalog().FindByKey(key); !ok {
					return fmt.Errorf("unknown credo %s", key)
				}
			}

			goal := st.AddGoal(name, targetDate, links, time.Now())
			fmt.Printf("Created goal %d: %s\n", goal.ID, goal.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().StringVar(&targetDate, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&links, "link", nil, "Linked credo keys, e.g. kekich_12")
	return cmd
}

func newGoalUpdateCommand() *cobra.Command {
	var name, targetDate string
	var links []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a goal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}

			st, _, err := openState()
			if err != nil {
				return err
			}

			var found bool
			for _, goal := range st.Goals() {
				if goal.ID != id {
					continue
				}
				found = true

				if cmd.Flags().Changed("name") {
					goal.Name = name
				}
				if cmd.Flags().Changed("target") {
					goal.TargetDate = targetDate
				}
				if cmd.Flags().Changed("link") {
					for _, key := range links {
						if _, ok := st.Catalog().FindByKey(key); !ok {
							return fmt.Errorf("unknown credo %s", key)
						}
					}
					goal.LinkedCredos = links
				}
				if err := st.UpdateGoal(goal); err != nil {
					return fmt.Errorf("state.UpdateGoal() > %w", err)
				}
				fmt.Printf("Updated goal %d.\n", id)
				break
			}
			if !found {
				return fmt.Errorf("goal %d not found", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().StringVar(&targetDate, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&links, "link", nil, "Linked credo keys, replacing the current set")
	return cmd
}

func newGoalDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}

			st, _, err := openState()
			if err != nil {
				return err
			}
			if err := st.DeleteGoal(id); err != nil {
				return fmt.Errorf("state.DeleteGoal() > %w", err)
			}
			fmt.Printf("Deleted goal %d.\n", id)
			return nil
		},
	}
}
