// Package cards decides which media cards are visible for a query and condition.
package cards

import "strings"

// ConditionAll is the condition tag that matches every card.
const ConditionAll = "all"

// Card is the view-model of one movie or series entry rendered in a tab.
// Cards are read-only inputs; visibility is computed, never stored.
type Card struct {
	ID        string
	Tab       string
	Title     string // display text, "<name> (<year>)"
	Name      string
	Type      string
	Condition string
	Country   string
}

// State is the current filter input.
type State struct {
	Query     string
	Condition string
}

// Result pairs a card with its computed visibility.
type Result struct {
	Card    Card
	Visible bool
}

// Conditions returns the distinct condition tags of cs, case-folded, in
// first-seen order. Cards without a condition contribute nothing.
func Conditions(cs []Card) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cs {
		tag := strings.ToLower(strings.TrimSpace(c.Condition))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
