// Package fuzzy ranks option names by edit distance to a mistyped one.
// Used by declargs to attach "Did you mean" suggestions to unknown-option errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds candidates within a maximum edit distance
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Single characters match almost anything
	}
}

// Match is a candidate with its distance and score
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindMatches returns candidates within range, best first. Candidates equal
// to the input are skipped. Ties keep the candidates' original order.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	input = strings.ToLower(input)

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if input == lower {
			continue
		}

		distance := m.distance(input, lower)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.score(input, lower, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score weighs edit distance with prefix and length similarity
func (m *Matcher) score(input, candidate string, distance int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}

	score := 1.0 - float64(distance)/float64(longest)

	if prefix := commonPrefixLength(input, candidate); prefix > 0 {
		score += float64(prefix) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := len(input) - len(candidate)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	score += (1.0 - float64(lengthDiff)/float64(longest)) * 0.2

	return min(score, 1.0)
}

// distance is the Levenshtein distance, cut short once it exceeds maxDistance
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	diff := len(a) - len(b)
	if diff > m.maxDistance || -diff > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			current[j] = min(current[j-1]+1, previous[j]+1, previous[j-1]+cost)
			rowMin = min(rowMin, current[j])
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// FindSuggestions returns up to maxSuggestions candidates close to input
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)

	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}
