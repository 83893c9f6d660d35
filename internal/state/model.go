package state

import "github.com/paulhuff/credo/internal/credo"

// Goal is a user-created objective, optionally linked to credos by
// composite key. Links carry no ownership; they may dangle if the
// catalog changes between releases.
type Goal struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	TargetDate   string   `json:"targetDate,omitempty"`
	LinkedCredos []string `json:"linkedCredos"`
	CreatedAt    int64    `json:"createdAt"`
}

// Application is an append-only log entry describing a real-world use
// of a credo. CredoText is a snapshot taken at creation time so later
// catalog edits do not rewrite history.
type Application struct {
	ID        int64      `json:"id"`
	CredoType credo.Type `json:"credoType"`
	CredoID   int        `json:"credoId"`
	Note      string     `json:"note"`
	CredoText string     `json:"credoText"`
	CreatedAt int64      `json:"createdAt"`
}
