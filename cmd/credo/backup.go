package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newBackupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import the full application state",
	}
	cmd.AddCommand(newBackupExportCommand())
	cmd.AddCommand(newBackupImportCommand())
	return cmd
}

func newBackupExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all state as a JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, fileStore, err := openState()
			if err != nil {
				return err
			}

			contents, err := fileStore.ExportAll()
			if err != nil {
				return fmt.Errorf("store.ExportAll() > %w", err)
			}

			if output == "" {
				if err := os.MkdirAll(cfg.Outputs.BackupDirectory, 0o755); err != nil {
					return fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Outputs.BackupDirectory, err)
				}
				output = filepath.Join(cfg.Outputs.BackupDirectory, fmt.Sprintf("credo-backup-%s.json", time.Now().Format("2006-01-02")))
			}
			if err := os.WriteFile(output, contents, 0o644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
			}
			fmt.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Backup file path (defaults into the backup directory)")
	return cmd
}

func newBackupImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup file, overwriting matching keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fileStore, err := openState()
			if err != nil {
				return err
			}

			contents, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}
			if err := fileStore.Import(contents); err != nil {
				return fmt.Errorf("store.Import() > %w", err)
			}
			fmt.Println("Backup imported.")
			return nil
		},
	}
}
