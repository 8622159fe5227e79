package title

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberPattern = regexp.MustCompile(`\b(\d+)\b`)

// Confidence grades a fuzzy match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the best candidate for a wanted title.
type Match struct {
	Index      int // position in candidates, -1 when nothing matched
	Title      string
	Score      float64
	Confidence Confidence
}

// Best returns the candidate most similar to want using Jaro-Winkler
// similarity on cleaned titles. Sequel numbers must agree: a shared number
// earns a small bonus and a missing or different one a penalty.
func Best(want string, candidates []string) Match {
	best := Match{Index: -1}
	if len(candidates) == 0 {
		return best
	}

	cleanWant := Clean(want)
	wantNums := numberPattern.FindAllString(cleanWant, -1)

	for i, candidate := range candidates {
		cleanCandidate := Clean(candidate)
		score := float64(edlib.JaroWinklerSimilarity(cleanWant, cleanCandidate))
		score = adjustForNumbers(score, wantNums, numberPattern.FindAllString(cleanCandidate, -1))
		if score > best.Score {
			best = Match{Index: i, Title: candidate, Score: score}
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		return Match{Index: -1, Score: best.Score}
	}
	return best
}

func adjustForNumbers(score float64, want, candidate []string) float64 {
	if len(want) == 0 {
		return score
	}
	if len(candidate) == 0 {
		return score * 0.85
	}
	have := make(map[string]bool, len(candidate))
	for _, n := range candidate {
		have[n] = true
	}
	for _, n := range want {
		if have[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
