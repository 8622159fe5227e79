package cards

import "strings"

// NormalizeQuery trims surrounding whitespace and lower-cases the query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// NormalizeCondition maps an empty selection to ConditionAll.
func NormalizeCondition(condition string) string {
	c := strings.ToLower(strings.TrimSpace(condition))
	if c == "" {
		return ConditionAll
	}
	return c
}

// MatchesQuery reports whether the card matches the raw query text.
// A card matches when its name contains the whole query, when every query
// word appears somewhere in its name, or when its type contains the query.
func MatchesQuery(c Card, query string) bool {
	q := NormalizeQuery(query)
	if q == "" {
		return true
	}

	name := strings.ToLower(c.Name)
	if strings.Contains(name, q) {
		return true
	}
	if containsAllWords(name, strings.Fields(q)) {
		return true
	}
	return strings.Contains(strings.ToLower(c.Type), q)
}

func containsAllWords(s string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

// MatchesCondition reports whether the card carries the selected condition.
// Both sides are compared case-insensitively.
func MatchesCondition(c Card, condition string) bool {
	cond := NormalizeCondition(condition)
	if cond == ConditionAll {
		return true
	}
	return strings.ToLower(strings.TrimSpace(c.Condition)) == cond
}

// Visible reports whether the card is shown for the given state.
func Visible(c Card, s State) bool {
	return MatchesQuery(c, s.Query) && MatchesCondition(c, s.Condition)
}

// Filter evaluates every card in order and returns one result per card.
func Filter(cards []Card, s State) []Result {
	results := make([]Result, len(cards))
	for i, c := range cards {
		results[i] = Result{Card: c, Visible: Visible(c, s)}
	}
	return results
}

// VisibleOnly returns the cards from results that are visible.
func VisibleOnly(results []Result) []Card {
	var out []Card
	for _, r := range results {
		if r.Visible {
			out = append(out, r.Card)
		}
	}
	return out
}
