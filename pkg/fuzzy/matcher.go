// Package fuzzy provides Levenshtein-based approximate string matching for
// typo-tolerant search over course and training names.
package fuzzy

import "strings"

// typoCorrections maps frequent misspellings (Azerbaijani keyboards included)
// onto the canonical search term. Order matters: corrections apply first
// match wins per token.
var typoCorrections = []struct {
	wrong string
	right string
}{
	{"piton", "python"},
	{"pyton", "python"},
	{"paython", "python"},
	{"maşın", "machine"},
	{"masin", "machine"},
	{"machina", "machine"},
	{"öyrənmə", "learning"},
	{"oyrənmə", "learning"},
	{"lerning", "learning"},
	{"təhlil", "analitika"},
	{"tehlil", "analitika"},
	{"analiz", "analitika"},
	{"təlim", "kurs"},
	{"telim", "kurs"},
}

// LevenshteinDistance returns the edit distance between a and b,
// case-insensitive. Uses a single-row DP, O(min) memory.
func LevenshteinDistance(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr := prev[0]
		prev[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min3(prev[j]+1, prev[j-1]+1, curr+cost)
			curr = prev[j]
			prev[j] = next
		}
	}
	return prev[len(rb)]
}

// Similarity normalizes edit distance into [0,1]; identical strings score 1.
// Two empty strings are considered identical.
func Similarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(LevenshteinDistance(a, b))/float64(maxLen)
}

// IsSimilar reports whether two strings clear the given similarity threshold.
func IsSimilar(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// FindBestMatch returns the candidate most similar to target, or "" when no
// candidate scores strictly above the threshold. Ties keep the earliest
// candidate.
func FindBestMatch(target string, candidates []string, threshold float64) string {
	best := ""
	bestScore := threshold
	for _, c := range candidates {
		if score := Similarity(target, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// CorrectCommonTypos rewrites known misspelled tokens inside the query,
// leaving unknown words untouched.
func CorrectCommonTypos(query string) string {
	corrected := strings.ToLower(query)
	for _, tc := range typoCorrections {
		corrected = strings.ReplaceAll(corrected, tc.wrong, tc.right)
	}
	return corrected
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
