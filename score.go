package dlm

import "strings"

// Score computes the similarity of query to text in [0,1]. An exact
// substring match (case-insensitive) is privileged and scores exactly 1.0.
// Otherwise the score is the best Ratcliff/Obershelp sequence-similarity
// ratio of the query against the whole text and against each of its words,
// so a typo in one word of a long title is not drowned out by the rest of
// it. Pure function of its arguments.
func Score(query, text string) float64 {
	if text == "" {
		return 0
	}

	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if strings.Contains(t, q) {
		return 1.0
	}

	best := ratio(q, t)
	for _, word := range strings.Fields(t) {
		if r := ratio(q, word); r > best {
			best = r
		}
	}
	return best
}

// ratio is the Ratcliff/Obershelp similarity: twice the number of matching
// characters divided by the total number of characters in both strings.
func ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 0
	}
	return 2 * float64(matchingRunes(ra, rb)) / float64(len(ra)+len(rb))
}

// matchingRunes counts the characters covered by the recursive
// longest-matching-block decomposition of a and b.
func matchingRunes(a, b []rune) int {
	i, j, k := longestMatch(a, b)
	if k == 0 {
		return 0
	}
	return k + matchingRunes(a[:i], b[:j]) + matchingRunes(a[i+k:], b[j+k:])
}

// longestMatch finds the longest block of runes common to a and b. Ties are
// broken toward the earliest position in a, then in b, which keeps the
// decomposition deterministic.
func longestMatch(a, b []rune) (bestI, bestJ, bestSize int) {
	// runLen[j] is the length of the common run ending at a[i], b[j].
	runLen := make(map[int]int, len(b))
	for i := range a {
		newRunLen := make(map[int]int, len(b))
		for j := range b {
			if a[i] != b[j] {
				continue
			}
			k := runLen[j-1] + 1
			newRunLen[j] = k
			if k > bestSize {
				bestI, bestJ, bestSize = i-k+1, j-k+1, k
			}
		}
		runLen = newRunLen
	}
	return bestI, bestJ, bestSize
}
