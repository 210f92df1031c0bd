package domain

import (
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scoring constants for fuzzy ranking
const (
	ExactMatchScore      = 1000 // pattern is a contiguous substring
	MatchBaseScore       = 100  // per matched pattern character
	ConsecutiveBonusStep = 10   // added to the bonus after each adjacent match
)

// IsSubsequenceMatch reports whether every character of pattern appears in
// haystack in order, ignoring case. An empty pattern always matches.
func IsSubsequenceMatch(haystack, pattern string) bool {
	return fuzzy.MatchFold(pattern, haystack)
}

// Score returns the relevance of haystack for pattern, 0 when pattern is not
// an in-order subsequence of haystack.
func Score(haystack, pattern string) int {
	haystack = strings.ToLower(haystack)
	pattern = strings.ToLower(pattern)

	if strings.Contains(haystack, pattern) {
		return ExactMatchScore
	}

	want := []rune(pattern)
	score := 0
	bonus := 0
	idx := 0

	for _, r := range haystack {
		if idx == len(want) {
			break
		}
		if r == want[idx] {
			score += MatchBaseScore + bonus
			bonus += ConsecutiveBonusStep
			idx++
		} else {
			bonus = 0
		}
	}

	if idx == len(want) {
		return score
	}
	return 0
}

// ScoredRecord pairs a record with its fuzzy score
type ScoredRecord struct {
	Record Record
	Score  int
}

// Rank scores every record's search text against term, drops non-matches and
// orders the rest by score descending. Equal scores keep their input order.
func Rank(records []Record, term string) []ScoredRecord {
	scored := make([]ScoredRecord, 0, len(records))
	for _, r := range records {
		if s := Score(r.SearchText(), term); s > 0 {
			scored = append(scored, ScoredRecord{Record: r, Score: s})
		}
	}

	slices.SortStableFunc(scored, func(a, b ScoredRecord) int {
		return b.Score - a.Score
	})

	return scored
}
