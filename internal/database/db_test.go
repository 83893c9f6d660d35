package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMultiRowInsert(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
		rows    int
		want    string
	}{
		{
			name:    "single row",
			table:   "review_logs",
			columns: []string{"credo_key", "quality"},
			rows:    1,
			want:    "INSERT INTO review_logs (credo_key, quality) VALUES (?, ?)",
		},
		{
			name:    "multiple rows",
			table:   "goals",
			columns: []string{"id", "name", "target_date"},
			rows:    3,
			want:    "INSERT INTO goals (id, name, target_date) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		},
		{
			name:    "single column",
			table:   "keys",
			columns: []string{"k"},
			rows:    2,
			want:    "INSERT INTO keys (k) VALUES (?), (?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildMultiRowInsert(tt.table, tt.columns, tt.rows)
			assert.Equal(t, tt.want, got)
		})
	}
}
