package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulhuff/credo/internal/credo"
	"github.com/paulhuff/credo/internal/state"
	"github.com/paulhuff/credo/internal/statistics"
	"github.com/paulhuff/credo/internal/store"
)

func newReportState(t *testing.T) *state.State {
	t.Helper()

	fileStore, err := store.NewFileStore(filepath.Join(t.TempDir(), "credo.json"))
	require.NoError(t, err)

	catalog, err := credo.NewCatalog(
		[]credo.Kekich{
			{ID: 1, Text: "guard your mornings", Category: "time"},
			{ID: 2, Text: "write it down", Category: "discipline"},
		},
		[]credo.Paulism{
			{ID: 1, Title: "The Short List", Truth: "less is more", Code: []string{"cut one thing"}},
		},
	)
	require.NoError(t, err)

	st, err := state.New(fileStore, catalog)
	require.NoError(t, err)
	return st
}

func TestNewData(t *testing.T) {
	st := newReportState(t)
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)

	_, err := st.GradeCard(credo.TypeKekich, 1, 5, now)
	require.NoError(t, err)
	st.AddGoal("Deep Work Quarter", "2025-09-30", []string{"kekich_1", "gone_key"}, now)
	_, err = st.AddApplication(credo.TypeKekich, 2, "captured the meeting actions", now.Add(time.Minute))
	require.NoError(t, err)

	result := statistics.Calculate(st.History(), 0, 0)
	data := NewData(st, result, now)

	assert.Equal(t, "2025-05-01", data.GeneratedAt)
	assert.Equal(t, 1, data.Streak)
	assert.Equal(t, 1, data.TotalReviews)
	assert.Equal(t, 0, data.MasteredCount)
	assert.Equal(t, 3, data.CatalogSize)
	// kekich_1 was just graded, so only the other two cards remain due.
	assert.Equal(t, 2, data.DueCount)

	require.Len(t, data.Goals, 1)
	assert.Equal(t, []string{"K#1: guard your mornings", "gone_key"}, data.Goals[0].Linked)

	require.Len(t, data.Applications, 1)
	assert.Equal(t, "write it down", data.Applications[0].Credo)
	assert.Equal(t, "2025-05-01", data.Applications[0].Date)
}

func TestNewData_MasteredList(t *testing.T) {
	st := newReportState(t)
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		_, err := st.GradeCard(credo.TypeKekich, 1, 5, now.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	data := NewData(st, statistics.StatisticsResult{}, now)
	assert.Equal(t, 1, data.MasteredCount)
	assert.Equal(t, []string{"K#1: guard your mornings"}, data.Mastered)
}

func TestNewData_RecentApplicationsAreNewestFirstAndCapped(t *testing.T) {
	st := newReportState(t)
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 7; i++ {
		_, err := st.AddApplication(credo.TypeKekich, 1, "note", now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	data := NewData(st, statistics.StatisticsResult{}, now)
	require.Len(t, data.Applications, recentApplicationLimit)
}

func TestRender(t *testing.T) {
	st := newReportState(t)
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)

	_, err := st.GradeCard(credo.TypeKekich, 1, 4, now)
	require.NoError(t, err)
	st.AddGoal("Deep Work Quarter", "2025-09-30", []string{"kekich_1"}, now)

	var out bytes.Buffer
	data := NewData(st, statistics.Calculate(st.History(), 0, 0), now)
	require.NoError(t, Render(&out, data))

	report := out.String()
	assert.Contains(t, report, "# Credo Mastery Progress Report")
	assert.Contains(t, report, "Generated on 2025-05-01")
	assert.Contains(t, report, "| 2025-05 | 1 | 1 | 0 | 0 |")
	assert.Contains(t, report, "- Deep Work Quarter (target 2025-09-30)")
	assert.Contains(t, report, "K#1: guard your mornings")
	assert.Contains(t, report, "None yet.")
	assert.Contains(t, report, "No applications logged yet.")
}

func TestRender_EmptyState(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, Data{GeneratedAt: "2025-05-01"}))

	assert.Contains(t, out.String(), "No goals yet.")
	assert.Contains(t, out.String(), "No applications logged yet.")
}
