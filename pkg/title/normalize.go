// Package title normalizes and compares media titles.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeral matches II-IX after a space. A lone "I" or "X" is left alone
// ("I Robot", "American History X").
var romanNumeral = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

// StripPunct lower-cases s and removes everything except letters, digits,
// underscores and whitespace. Two titles are an exact match when their
// stripped forms are equal.
func StripPunct(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Compact folds accents, lower-cases and keeps only ASCII letters and digits.
// It is used to match titles against file names ("Breaking.Bad" → "breakingbad").
func Compact(s string) string {
	s = strings.ToLower(RemoveAccents(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Clean normalizes a title for fuzzy comparison: lower case, Roman numerals
// II-IX as digits, no accents, no leading articles, no punctuation, single
// spaces.
func Clean(title string) string {
	s := strings.ToLower(title)
	s = romanNumeral.ReplaceAllStringFunc(s, func(m string) string {
		if arabic, ok := romanToArabic[strings.TrimSpace(m)]; ok {
			return " " + arabic
		}
		return m
	})
	s = RemoveAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Subtitles: "Léon: The Professional"
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(part)
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// RemoveAccents strips combining marks ("Amélie" → "Amelie").
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
