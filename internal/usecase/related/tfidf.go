package related

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/hoclieu/tracuu/internal/domain/topic"
)

// Vector space parameters, mirroring the tuning the recommender was built with.
const (
	maxVocabulary = 1000 // highest-frequency terms kept
	maxNGram      = 3    // unigrams through trigrams
	maxDocFreq    = 0.8  // terms in more than 80% of documents are dropped
	titleRepeat   = 3    // title term frequency boost over the definition
)

// wordRegex matches word tokens of at least two characters (letters, digits,
// underscore), the unit the vocabulary is built from.
var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

// englishStopWords prunes high-frequency English function words from the
// vocabulary. Vietnamese stop words are deliberately not removed here; the
// asymmetry is inherited behavior.
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "because": true, "been": true,
	"before": true, "being": true, "below": true, "between": true, "both": true,
	"but": true, "by": true, "can": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "had": true,
	"has": true, "have": true, "having": true, "he": true, "her": true,
	"here": true, "hers": true, "him": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "just": true, "more": true, "most": true,
	"my": true, "no": true, "nor": true, "not": true, "now": true,
	"of": true, "off": true, "on": true, "once": true, "only": true,
	"or": true, "other": true, "our": true, "out": true, "over": true,
	"own": true, "same": true, "she": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "until": true, "up": true, "very": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "who": true, "why": true, "will": true,
	"with": true, "you": true, "your": true,
}

// documentText builds the corpus document for one topic: the title repeated
// to triple its term weight, then the short definition.
func documentText(t topic.Topic) string {
	parts := make([]string, 0, titleRepeat+1)
	for i := 0; i < titleRepeat; i++ {
		parts = append(parts, t.Title())
	}
	if def := t.ShortDefinition(); def != "" {
		parts = append(parts, def)
	}
	return strings.Join(parts, " ")
}

// ngramTokens lowercases the text, extracts word tokens, removes English stop
// words, and expands the remainder into 1..3-grams joined by single spaces.
func ngramTokens(text string) []string {
	words := wordRegex.FindAllString(strings.ToLower(text), -1)

	kept := words[:0]
	for _, w := range words {
		if !englishStopWords[w] {
			kept = append(kept, w)
		}
	}

	var grams []string
	for n := 1; n <= maxNGram; n++ {
		for i := 0; i+n <= len(kept); i++ {
			grams = append(grams, strings.Join(kept[i:i+n], " "))
		}
	}
	return grams
}

// vectorSpace is a TF-IDF vector space over one corpus snapshot.
// It is rebuilt from scratch per ranking call; nothing is shared or cached.
type vectorSpace struct {
	vectors []map[string]float64 // L2-normalized TF-IDF vectors, one per document
}

// newVectorSpace fits the space over the documents: count term and document
// frequencies, prune by document frequency, keep the top-frequency
// vocabulary, then weight with smoothed IDF and L2-normalize.
func newVectorSpace(docs []string) *vectorSpace {
	n := len(docs)

	termFreqs := make([]map[string]int, n)
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, g := range ngramTokens(doc) {
			tf[g]++
			corpusFreq[g]++
		}
		for g := range tf {
			docFreq[g]++
		}
		termFreqs[i] = tf
	}

	// Prune terms present in too many documents, then keep the top
	// maxVocabulary terms by corpus frequency (alphabetical tie-break
	// keeps the ranking deterministic).
	candidates := make([]string, 0, len(corpusFreq))
	for g, df := range docFreq {
		if float64(df)/float64(n) > maxDocFreq {
			continue
		}
		candidates = append(candidates, g)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if corpusFreq[candidates[i]] != corpusFreq[candidates[j]] {
			return corpusFreq[candidates[i]] > corpusFreq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxVocabulary {
		candidates = candidates[:maxVocabulary]
	}

	idf := make(map[string]float64, len(candidates))
	for _, g := range candidates {
		idf[g] = math.Log(float64(1+n)/float64(1+docFreq[g])) + 1
	}

	vectors := make([]map[string]float64, n)
	for i, tf := range termFreqs {
		vec := make(map[string]float64)
		var norm float64
		for g, count := range tf {
			w, ok := idf[g]
			if !ok {
				continue
			}
			v := float64(count) * w
			vec[g] = v
			norm += v * v
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for g := range vec {
				vec[g] /= norm
			}
		}
		vectors[i] = vec
	}

	return &vectorSpace{vectors: vectors}
}

// cosine returns the cosine similarity between two fitted documents.
// Vectors are pre-normalized, so this is a plain dot product.
func (s *vectorSpace) cosine(i, j int) float64 {
	a, b := s.vectors[i], s.vectors[j]
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for g, v := range a {
		dot += v * b[g]
	}
	return dot
}

// similarityScores computes the cosine similarity between the source topic
// and every other topic in the corpus, keyed by topic id. The source id is
// excluded from the result. A corpus of one (or an absent source) yields an
// empty map.
func similarityScores(source topic.Topic, all []topic.Topic) map[int]float64 {
	if len(all) <= 1 {
		return map[int]float64{}
	}

	sourceIdx := -1
	docs := make([]string, len(all))
	for i, t := range all {
		docs[i] = documentText(t)
		if t.ID() == source.ID() {
			sourceIdx = i
		}
	}
	if sourceIdx == -1 {
		return map[int]float64{}
	}

	space := newVectorSpace(docs)

	scores := make(map[int]float64, len(all)-1)
	for i, t := range all {
		if t.ID() == source.ID() {
			continue
		}
		scores[t.ID()] = space.cosine(sourceIdx, i)
	}
	return scores
}
