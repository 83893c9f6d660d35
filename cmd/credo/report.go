package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/paulhuff/credo/internal/pdf"
	"github.com/paulhuff/credo/internal/report"
	"github.com/paulhuff/credo/internal/statistics"
)

func newReportCommand() *cobra.Command {
	var year, month int
	var asPDF bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report, optionally rendered as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, _, err := openState()
			if err != nil {
				return err
			}

			now := time.Now()
			result := statistics.Calculate(st.History(), year, month)
			data := report.NewData(st, result, now)

			if err := os.MkdirAll(cfg.Outputs.ReportDirectory, 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Outputs.ReportDirectory, err)
			}
			reportPath := filepath.Join(cfg.Outputs.ReportDirectory, fmt.Sprintf("report-%s.md", now.Format("2006-01-02")))

			file, err := os.Create(reportPath)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", reportPath, err)
			}
			if err := report.Render(file, data); err != nil {
				_ = file.Close()
				return fmt.Errorf("report.Render() > %w", err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close report file > %w", err)
			}
			fmt.Printf("Wrote %s\n", reportPath)

			if asPDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(reportPath)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Printf("Wrote %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter statistics by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter statistics by month (1-12), requires --year")
	cmd.Flags().BoolVar(&asPDF, "pdf", false, "Also render the report as PDF")
	return cmd
}
