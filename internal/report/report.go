// Package report renders the markdown progress report.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/paulhuff/credo/internal/review"
	"github.com/paulhuff/credo/internal/state"
	"github.com/paulhuff/credo/internal/statistics"
)

//go:embed templates/report.md.go.tmpl
var reportTemplate string

// recentApplicationLimit caps the applications section.
const recentApplicationLimit = 5

// GoalLine is one rendered goal.
type GoalLine struct {
	Name       string
	TargetDate string
	Linked     []string
}

// ApplicationLine is one rendered application entry.
type ApplicationLine struct {
	Date  string
	Credo string
	Note  string
}

// Data is everything the report template needs.
type Data struct {
	GeneratedAt   string
	Streak        int
	TotalReviews  int
	MasteredCount int
	CatalogSize   int
	DueCount      int
	Periods       []statistics.ReviewStatistics
	Aggregate     statistics.AggregateStatistics
	Mastered      []string
	Goals         []GoalLine
	Applications  []ApplicationLine
}

// NewData assembles report data from the current state. Linked credo
// keys are resolved to their catalog summaries; keys that no longer
// resolve are shown as is.
func NewData(st *state.State, result statistics.StatisticsResult, now time.Time) Data {
	data := Data{
		GeneratedAt:   now.Format("2006-01-02"),
		Streak:        st.Stats().Streak,
		TotalReviews:  st.Stats().TotalReviews,
		MasteredCount: st.MasteredCount(),
		CatalogSize:   st.Catalog().Len(),
		DueCount:      len(st.DueCards(now)),
		Periods:       result.Periods,
		Aggregate:     result.Aggregate,
	}

	cards := st.Cards()
	for _, c := range st.Catalog().All() {
		if cardState, ok := cards[c.Key()]; ok && review.Mastered(cardState) {
			data.Mastered = append(data.Mastered, c.Summary())
		}
	}

	for _, goal := range st.Goals() {
		line := GoalLine{Name: goal.Name, TargetDate: goal.TargetDate}
		for _, key := range goal.LinkedCredos {
			label := key
			if c, ok := st.Catalog().FindByKey(key); ok {
				label = c.Summary()
			}
			line.Linked = append(line.Linked, label)
		}
		data.Goals = append(data.Goals, line)
	}

	applications := st.Applications()
	for i := len(applications) - 1; i >= 0 && len(data.Applications) < recentApplicationLimit; i-- {
		application := applications[i]
		data.Applications = append(data.Applications, ApplicationLine{
			Date:  time.UnixMilli(application.CreatedAt).Format("2006-01-02"),
			Credo: application.CredoText,
			Note:  application.Note,
		})
	}

	return data
}

// Render writes the markdown report.
func Render(w io.Writer, data Data) error {
	tmpl, err := template.New("report.md.go.tmpl").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
