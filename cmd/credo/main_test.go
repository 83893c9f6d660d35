package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestCommandTree(t *testing.T) {
	tests := []struct {
		cmdUse  string
		cmd     interface{ HasSubCommands() bool }
		subCmds bool
	}{
		{cmdUse: "review", cmd: newReviewCommand(), subCmds: true},
		{cmdUse: "library", cmd: newLibraryCommand(), subCmds: true},
		{cmdUse: "goal", cmd: newGoalCommand(), subCmds: true},
		{cmdUse: "application", cmd: newApplicationCommand(), subCmds: true},
		{cmdUse: "stats", cmd: newStatsCommand(), subCmds: false},
		{cmdUse: "report", cmd: newReportCommand(), subCmds: false},
		{cmdUse: "backup", cmd: newBackupCommand(), subCmds: true},
		{cmdUse: "db", cmd: newDBCommand(), subCmds: true},
	}

	for _, tt := range tests {
		t.Run(tt.cmdUse, func(t *testing.T) {
			assert.Equal(t, tt.subCmds, tt.cmd.HasSubCommands())
		})
	}
}

func TestNewStatsCommand_MonthWithoutYear(t *testing.T) {
	cmd := newStatsCommand()
	cmd.SetArgs([]string{"--month", "3"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--month requires --year")
}

func TestNewReportCommand_InvalidMonth(t *testing.T) {
	cmd := newReportCommand()
	cmd.SetArgs([]string{"--year", "2025", "--month", "13"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--month must be between 1 and 12")
}
