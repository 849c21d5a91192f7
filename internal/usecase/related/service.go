package related

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/hoclieu/tracuu/internal/domain"
	"github.com/hoclieu/tracuu/internal/domain/search/result"
	"github.com/hoclieu/tracuu/internal/logger"
	"github.com/hoclieu/tracuu/internal/metrics"
)

// Blend weights. The heuristic term is weighted by 0.5 of its own [0, 0.6]
// range rather than renormalized, so the maximum combined score is exactly
// 0.7*1.0 + 0.5*0.6 = 1.0 but typical scores sit well below it. This is
// inherited, observable behavior and is kept as is.
const (
	tfidfWeight     = 0.7
	heuristicWeight = 0.5
)

// Service ranks topics related to a source topic by blending text similarity
// with rule-based bonuses. The vector space is rebuilt on every call; no
// state is shared between requests.
type Service struct {
	topics TopicReader
}

// New creates a related-topic service.
func New(topics TopicReader) *Service {
	return &Service{topics: topics}
}

// FindRelated returns up to topN topics most related to topicID, best first,
// scores rounded to 4 decimals. Returns domain.ErrTopicNotFound when the
// source id is not in the corpus, and an empty list when the corpus holds
// one topic or fewer.
func (s *Service) FindRelated(ctx context.Context, topicID, topN int) ([]result.RelatedTopic, error) {
	start := time.Now()

	all, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all topics: %w", err)
	}

	sourceIdx := -1
	for i, t := range all {
		if t.ID() == topicID {
			sourceIdx = i
			break
		}
	}
	if sourceIdx == -1 {
		metrics.RelatedComputationsTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("topic %d: %w", topicID, domain.ErrTopicNotFound)
	}

	if len(all) <= 1 {
		metrics.RelatedComputationsTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	source := all[sourceIdx]
	tfidfScores := similarityScores(source, all)

	type scored struct {
		idx   int
		score float64
	}
	combined := make([]scored, 0, len(all)-1)
	for i, t := range all {
		if t.ID() == topicID {
			continue
		}
		score := tfidfScores[t.ID()]*tfidfWeight + heuristicScore(source, t)*heuristicWeight
		combined = append(combined, scored{idx: i, score: score})
	}

	// Sort on full precision, round only what is exposed.
	sort.SliceStable(combined, func(i, j int) bool { return combined[i].score > combined[j].score })
	if topN >= 0 && len(combined) > topN {
		combined = combined[:topN]
	}

	ranked := make([]result.RelatedTopic, len(combined))
	for i, c := range combined {
		ranked[i] = result.NewRelatedTopic(all[c.idx], round4(c.score))
	}

	metrics.RelatedComputationsTotal.WithLabelValues("hit").Inc()
	metrics.RelatedRankingDuration.Observe(time.Since(start).Seconds())

	logger.FromContext(ctx).Debug("related topics ranked",
		zap.Int("topic_id", topicID),
		zap.Int("corpus_size", len(all)),
		zap.Int("returned", len(ranked)),
	)

	return ranked, nil
}

// round4 rounds to 4 decimal digits, the precision exposed to callers.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
