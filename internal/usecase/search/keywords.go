package search

import (
	"unicode/utf8"

	"github.com/hoclieu/tracuu/internal/textnorm"
)

// stopWords are common Vietnamese and English function words that carry no
// search signal. Vietnamese entries are listed in folded (diacritic-free)
// form because extraction runs on normalized queries.
var stopWords = map[string]bool{
	// Vietnamese
	"la": true, "cua": true, "va": true, "co": true, "duoc": true,
	"trong": true, "de": true, "mot": true, "cac": true, "nay": true,
	"cho": true, "tu": true, "voi": true, "nhung": true, "thi": true,
	"ve": true, "lam": true, "sao": true, "nhu": true, "nao": true,
	"gi": true, "ai": true, "dau": true, "khi": true, "bao": true,
	"gio": true, "hieu": true, "hoc": true, "tim": true, "biet": true,
	"muon": true, "can": true,
	// English (also covers folded "thế")
	"the": true, "a": true, "an": true, "to": true, "of": true,
	"in": true, "on": true, "at": true, "for": true, "is": true,
	"are": true, "was": true, "were": true,
}

// extractKeywords pulls meaningful tokens out of a query: normalize, split on
// whitespace, drop stop words and single-character tokens. When nothing
// survives it falls back to the whole normalized query so callers always have
// something to match against.
func extractKeywords(query string) []string {
	var keywords []string
	for _, w := range textnorm.Tokens(query) {
		if stopWords[w] || utf8.RuneCountInString(w) < 2 {
			continue
		}
		keywords = append(keywords, w)
	}

	if len(keywords) == 0 {
		keywords = []string{textnorm.Normalize(query)}
	}
	return keywords
}
