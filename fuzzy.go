package uszipcode

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultMinSimilarity is the similarity floor (0-100) a fuzzy candidate must
// reach to be accepted.
const DefaultMinSimilarity = 70

// extractLimit caps the candidates returned in multi-match mode.
const extractLimit = 5

// Similarity scoring is a weighted best-of over several string ratios, so
// that abbreviations, substrings and reordered words all score well:
//
//	ratio          2*LCS / (len(a)+len(b)) on normalized strings
//	partial        best ratio of the shorter string against the windows of
//	               the longer one (at most as long, clipped at the end)
//	token sort     ratio after sorting the words of both strings
//	token set      ratio of shared words against shared+remaining words
//
// Partial variants are only used when one string is at least 1.5 times longer
// than the other, and are scaled down (0.9, or 0.6 beyond 8 times longer).
// Token variants are scaled by 0.95.
const (
	partialLengthRatio = 1.5
	partialScale       = 0.9
	farPartialScale    = 0.6
	farLengthRatio     = 8
	tokenScale         = 0.95
)

// normalizeName lowercases s, keeps ASCII letters, digits and underscores and
// turns everything else into a space.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r > 127:
			continue
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func roundScore(f float64) int {
	return int(math.RoundToEven(f))
}

// lcsLength returns the length of the longest common subsequence.
func lcsLength(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func rawRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return 2 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

func simpleRatio(a, b string) int {
	return roundScore(100 * rawRatio(a, b))
}

func partialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	best := 0.0
	for i := 0; i < len(long); i++ {
		end := min(i+len(short), len(long))
		r := rawRatio(short, long[i:end])
		if r > 0.995 {
			return 100
		}
		best = max(best, r)
	}
	return roundScore(100 * best)
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSortRatio(a, b string, partial bool) int {
	sa, sb := sortedTokens(a), sortedTokens(b)
	if partial {
		return partialRatio(sa, sb)
	}
	return simpleRatio(sa, sb)
}

func tokenSetRatio(a, b string, partial bool) int {
	setA := tokenSet(a)
	setB := tokenSet(b)
	var both, onlyA, onlyB []string
	for t := range setA {
		if setB[t] {
			both = append(both, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range setB {
		if !setA[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(both)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(both, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	score := simpleRatio
	if partial {
		score = partialRatio
	}
	return max(score(sect, combinedA), score(sect, combinedB), score(combinedA, combinedB))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(s) {
		set[t] = true
	}
	return set
}

// similarity scores two names from 0 to 100.
func similarity(a, b string) int {
	return weightedRatio(normalizeName(a), normalizeName(b))
}

// weightedRatio expects normalized input.
func weightedRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	base := float64(simpleRatio(a, b))
	la, lb := float64(len(a)), float64(len(b))
	lenRatio := max(la, lb) / min(la, lb)

	if lenRatio < partialLengthRatio {
		tsor := float64(tokenSortRatio(a, b, false)) * tokenScale
		tser := float64(tokenSetRatio(a, b, false)) * tokenScale
		return roundScore(max(base, tsor, tser))
	}

	scale := partialScale
	if lenRatio > farLengthRatio {
		scale = farPartialScale
	}
	partial := float64(partialRatio(a, b)) * scale
	ptsor := float64(tokenSortRatio(a, b, true)) * tokenScale * scale
	ptser := float64(tokenSetRatio(a, b, true)) * tokenScale * scale
	return roundScore(max(base, partial, ptsor, ptser))
}

// fuzzyMatch is a scored candidate.
type fuzzyMatch struct {
	Choice string
	Score  int
	dist   int
	index  int
}

// extractMatches scores query against every choice and returns up to limit
// candidates, best first. Equal scores are ordered by edit distance to the
// query and then by position in choices.
func extractMatches(query string, choices []string, limit int) []fuzzyMatch {
	q := normalizeName(query)
	if q == "" || len(choices) == 0 {
		return nil
	}
	matches := make([]fuzzyMatch, 0, len(choices))
	for i, choice := range choices {
		c := normalizeName(choice)
		matches = append(matches, fuzzyMatch{
			Choice: choice,
			Score:  weightedRatio(q, c),
			dist:   levenshtein.ComputeDistance(q, c),
			index:  i,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.index < b.index
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// resolveName returns the best candidate (bestMatch) or all of the top
// candidates scoring at least minSimilarity.
func resolveName(query string, choices []string, bestMatch bool, minSimilarity int) []string {
	limit := extractLimit
	if bestMatch {
		limit = 1
	}
	var out []string
	for _, m := range extractMatches(query, choices, limit) {
		if m.Score >= minSimilarity {
			out = append(out, m.Choice)
		}
	}
	return out
}
