package search

import (
	"strings"

	"github.com/hoclieu/tracuu/internal/textnorm"
)

// Tiered relevance scores, highest tier wins.
const (
	scoreExact        = 1.0  // candidate equals query
	scorePrefix       = 0.9  // candidate starts with query
	scoreSubstring    = 0.7  // query contained in candidate
	scoreKeywordWord  = 0.95 // a keyword equals a whole candidate token
	scoreKeywordSub   = 0.85 // a keyword contained in candidate
	scoreKeywordPart  = 0.65 // keyword and a candidate token overlap partially
	scoreWordSubset   = 0.6  // all query tokens appear among candidate tokens
	scoreWordFraction = 0.5  // scaled by the matched fraction of query tokens
	scoreFuzzy        = 0.3  // query is a character subsequence of candidate
)

// relevance scores how well candidate text matches a query, in [0, 1].
// Both sides are diacritic-folded first; tiers are evaluated in strict
// priority order and the first hit wins.
func relevance(candidate, query string) float64 {
	if candidate == "" || query == "" {
		return 0.0
	}

	cand := textnorm.Normalize(candidate)
	q := textnorm.Normalize(query)

	if cand == q {
		return scoreExact
	}
	if strings.HasPrefix(cand, q) {
		return scorePrefix
	}
	if strings.Contains(cand, q) {
		return scoreSubstring
	}

	candTokens := strings.Fields(cand)
	candSet := make(map[string]bool, len(candTokens))
	for _, w := range candTokens {
		candSet[w] = true
	}

	// Keyword tiers: first keyword (in extraction order) that matches decides.
	for _, kw := range extractKeywords(query) {
		if strings.Contains(cand, kw) {
			if candSet[kw] {
				return scoreKeywordWord
			}
			return scoreKeywordSub
		}
		for _, w := range candTokens {
			if strings.Contains(w, kw) || strings.Contains(kw, w) {
				return scoreKeywordPart
			}
		}
	}

	queryTokens := strings.Fields(q)
	querySet := make(map[string]bool, len(queryTokens))
	for _, w := range queryTokens {
		querySet[w] = true
	}

	subset := true
	matched := 0
	for w := range querySet {
		if candSet[w] {
			matched++
		} else {
			subset = false
		}
	}
	if subset && len(querySet) > 0 {
		return scoreWordSubset
	}
	if matched > 0 {
		return scoreWordFraction * float64(matched) / float64(len(querySet))
	}

	// Fuzzy fallback: query characters must appear in order within candidate.
	if isSubsequence(q, cand) {
		return scoreFuzzy
	}

	return 0.0
}

// isSubsequence reports whether all runes of q appear in s in order.
func isSubsequence(q, s string) bool {
	qr := []rune(q)
	i := 0
	for _, r := range s {
		if i < len(qr) && r == qr[i] {
			i++
		}
	}
	return i == len(qr)
}
