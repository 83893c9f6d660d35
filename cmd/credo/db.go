package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paulhuff/credo/internal/database"
	"github.com/paulhuff/credo/internal/datasync"
	"github.com/paulhuff/credo/internal/history"
)

func newDBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the optional local MySQL mirror",
	}
	cmd.AddCommand(newDBMigrateCommand())
	cmd.AddCommand(newDBSyncCommand())
	return cmd
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			if err := database.Migrate(ctx, db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func newDBSyncCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror the file-store state into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, _, err := openState()
			if err != nil {
				return err
			}

			db, err := database.Open(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			syncer := datasync.NewSyncer(
				datasync.NewDBCardSink(db),
				history.NewDBRepository(db),
				datasync.NewDBGoalSink(db),
				datasync.NewDBApplicationSink(db),
				os.Stdout,
			)
			snapshot := datasync.Snapshot{
				Cards:        st.Cards(),
				History:      st.History(),
				Goals:        st.Goals(),
				Applications: st.Applications(),
			}

			result, err := syncer.Sync(ctx, snapshot, datasync.SyncOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("syncer.Sync() > %w", err)
			}

			fmt.Println("Sync Summary:")
			if dryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Cards:        %d upserted\n", result.CardsUpserted)
			fmt.Printf("  Review logs:  %d new, %d skipped\n", result.ReviewLogsNew, result.ReviewLogsSkipped)
			fmt.Printf("  Goals:        %d upserted\n", result.GoalsUpserted)
			fmt.Printf("  Applications: %d upserted\n", result.ApplicationsUpserted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
