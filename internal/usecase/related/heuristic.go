package related

import (
	"strings"
	"unicode/utf8"

	"github.com/hoclieu/tracuu/internal/domain/topic"
)

// Heuristic rule weights. The three rules are additive, max total 0.6.
const (
	sameCategoryBonus = 0.3
	titleOverlapCap   = 0.2
	titleOverlapScale = 0.3
	defLengthBonus    = 0.1
	defLengthMinRatio = 0.8 // definition lengths within 20% of each other
)

// titleStopWords are removed before computing title token overlap.
// Matching is on raw lowercase tokens, so the Vietnamese entries keep
// their diacritics.
var titleStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "của": true, "và": true, "là": true, "có": true,
	"trong": true, "với": true, "các": true, "được": true, "từ": true,
}

// heuristicScore applies the rule-based bonus between two topics, in [0, 0.6]:
// same category, title keyword overlap (capped), and similar definition length.
func heuristicScore(source, candidate topic.Topic) float64 {
	score := 0.0

	if source.CategoryID() == candidate.CategoryID() {
		score += sameCategoryBonus
	}

	sourceKeywords := titleKeywords(source.Title())
	candidateKeywords := titleKeywords(candidate.Title())
	if len(sourceKeywords) > 0 {
		overlap := 0
		for w := range sourceKeywords {
			if candidateKeywords[w] {
				overlap++
			}
		}
		if overlap > 0 {
			ratio := float64(overlap) / float64(len(sourceKeywords))
			score += min(titleOverlapCap, ratio*titleOverlapScale)
		}
	}

	srcLen := utf8.RuneCountInString(source.ShortDefinition())
	candLen := utf8.RuneCountInString(candidate.ShortDefinition())
	if srcLen > 0 && candLen > 0 {
		ratio := float64(min(srcLen, candLen)) / float64(max(srcLen, candLen))
		if ratio >= defLengthMinRatio {
			score += defLengthBonus
		}
	}

	return score
}

// titleKeywords lowercase-splits a title into its token set minus stop words.
func titleKeywords(title string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if !titleStopWords[w] {
			set[w] = true
		}
	}
	return set
}
