package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulhuff/credo/internal/credo"
)

// setupTestConfigFile writes a config pointing all paths into tmpDir and
// returns the config file path.
func setupTestConfigFile(t *testing.T, tmpDir string) string {
	t.Helper()

	contents := fmt.Sprintf(`data:
  file: %s
outputs:
  report_directory: %s
  backup_directory: %s
`,
		filepath.Join(tmpDir, "credo.json"),
		filepath.Join(tmpDir, "reports"),
		filepath.Join(tmpDir, "backups"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o644))
	return cfgPath
}

// useTestConfig points the global config flag at a temp config for one test.
func useTestConfig(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	cfgPath := setupTestConfigFile(t, tmpDir)
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
	return tmpDir
}

func TestParseCredoRef(t *testing.T) {
	tests := []struct {
		ref      string
		wantType credo.Type
		wantID   int
		wantErr  string
	}{
		{ref: "kekich_12", wantType: credo.TypeKekich, wantID: 12},
		{ref: "paulism_3", wantType: credo.TypePaulism, wantID: 3},
		{ref: "kekich", wantErr: "invalid credo reference"},
		{ref: "stoic_1", wantErr: "unknown credo type"},
		{ref: "kekich_x", wantErr: "invalid credo id"},
		{ref: "_5", wantErr: "invalid credo reference"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			gotType, gotID, err := parseCredoRef(tt.ref)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func TestOpenState(t *testing.T) {
	useTestConfig(t)

	st, fileStore, err := openState()
	require.NoError(t, err)
	assert.NotNil(t, fileStore)
	assert.Equal(t, 111, st.Catalog().Len())
}
