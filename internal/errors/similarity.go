package errors

import "strings"

// editDistance computes the Damerau-Levenshtein distance between two
// strings: insertions, deletions, substitutions, and transpositions of
// adjacent characters each count as a single edit. Transpositions matter
// for typo detection: plain Levenshtein charges a swap two edits.
func editDistance(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Two previous rows are needed for transposition detection.
	prevprev := make([]int, lb+1)
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				best = min(best, prevprev[j-2]+1)
			}
			curr[j] = best
		}
		prevprev = prev
		prev = curr
	}

	return prev[lb]
}

// Similarity returns a normalized similarity score between 0.0 and 1.0.
// 1.0 means identical strings (ignoring case), 0.0 completely different.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(editDistance(a, b))/float64(maxLen)
}

// FindClosest returns the candidate most similar to target, or an empty
// string if no candidate reaches the threshold.
func FindClosest(target string, candidates []string, threshold float64) string {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if score := Similarity(target, c); score > bestScore {
			bestScore = score
			best = c
		}
	}
	if bestScore >= threshold {
		return best
	}
	return ""
}
