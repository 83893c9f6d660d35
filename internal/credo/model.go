// Package credo provides the immutable catalog of principles available for review.
package credo

import (
	"fmt"
	"strings"
)

// Type distinguishes the two catalog variants.
type Type string

const (
	TypeKekich  Type = "kekich"
	TypePaulism Type = "paulism"
)

// Kekich is a single free-text principle with a category tag.
type Kekich struct {
	ID       int    `yaml:"id"`
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

// Paulism is a titled rule-set: a short truth statement and an ordered code list.
type Paulism struct {
	ID    int      `yaml:"id"`
	Title string   `yaml:"title"`
	Truth string   `yaml:"truth"`
	Code  []string `yaml:"code"`
}

// Credo is a catalog entry of either variant, tagged with its type.
// Kekich entries populate Text/Category; Paulism entries populate
// Title/Truth/Code. IDs are unique only within a type.
type Credo struct {
	Type     Type
	ID       int
	Text     string
	Category string
	Title    string
	Truth    string
	Code     []string
}

// Key returns the composite key joining a credo to its scheduling state.
func Key(t Type, id int) string {
	return fmt.Sprintf("%s_%d", t, id)
}

// Key returns the credo's composite key.
func (c Credo) Key() string {
	return Key(c.Type, c.ID)
}

// Front returns the prompt side of the credo's card.
func (c Credo) Front() string {
	if c.Type == TypeKekich {
		return c.Text
	}
	return fmt.Sprintf("%s\n%q", c.Title, c.Truth)
}

// Summary returns a one-line label used in lists and goal links.
func (c Credo) Summary() string {
	if c.Type == TypeKekich {
		text := c.Text
		if len(text) > 60 {
			text = text[:60] + "..."
		}
		return fmt.Sprintf("K#%d: %s", c.ID, text)
	}
	return fmt.Sprintf("P#%d: %s", c.ID, c.Title)
}

// Matches reports whether the credo matches a case-insensitive search term.
func (c Credo) Matches(term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	for _, field := range []string{c.Text, c.Category, c.Title, c.Truth} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
