package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hoclieu/tracuu/internal/domain/search/result"
	"github.com/hoclieu/tracuu/internal/logger"
	"github.com/hoclieu/tracuu/internal/metrics"
)

// relevanceThreshold is the minimum combined score for a hit to be kept.
const relevanceThreshold = 0.15

// Field weights applied before the per-record max.
const (
	definitionWeight = 0.95 // topic short_definition
	contentWeight    = 0.6  // section content, longer and noisier than headings
	slugWeight       = 0.5  // category slug
)

// previewLen is the content preview cutoff in runes.
const previewLen = 200

// Service scores topics, sections, and categories against free-text queries.
type Service struct {
	topics     TopicReader
	sections   SectionReader
	categories CategoryReader
}

// New creates a search service.
func New(topics TopicReader, sections SectionReader, categories CategoryReader) *Service {
	return &Service{topics: topics, sections: sections, categories: categories}
}

// Search ranks all three entity types against the query.
// tagIDs, when non-empty, restricts topic candidates to topics carrying any
// of the given tags (union). limit caps each result list independently;
// a non-positive limit yields empty lists.
func (s *Service) Search(ctx context.Context, query string, limit int, tagIDs []int) (result.Response, error) {
	resp := result.Response{Query: query}

	if strings.TrimSpace(query) == "" {
		metrics.SearchesTotal.WithLabelValues("blank_query").Inc()
		return resp, nil
	}
	if limit < 0 {
		limit = 0
	}

	topics, err := s.searchTopics(ctx, query, limit, tagIDs)
	if err != nil {
		return result.Response{Query: query}, err
	}
	resp.Topics = topics

	sections, err := s.searchSections(ctx, query, limit)
	if err != nil {
		return result.Response{Query: query}, err
	}
	resp.Sections = sections

	categories, err := s.searchCategories(ctx, query, limit)
	if err != nil {
		return result.Response{Query: query}, err
	}
	resp.Categories = categories

	outcome := "hit"
	if resp.TotalResults() == 0 {
		outcome = "empty"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()

	logger.FromContext(ctx).Debug("search completed",
		zap.String("query", query),
		zap.Int("topics", len(resp.Topics)),
		zap.Int("sections", len(resp.Sections)),
		zap.Int("categories", len(resp.Categories)),
	)

	return resp, nil
}

// searchTopics scores title and short_definition; the definition score is
// dampened so title hits dominate at equal relevance.
func (s *Service) searchTopics(ctx context.Context, query string, limit int, tagIDs []int) ([]result.Topic, error) {
	all, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all topics: %w", err)
	}
	metrics.SearchCorpusSize.WithLabelValues("topic").Observe(float64(len(all)))

	var hits []result.Topic
	for _, t := range all {
		if len(tagIDs) > 0 && !t.HasAnyTag(tagIDs) {
			continue
		}
		titleScore := relevance(t.Title(), query)
		defScore := relevance(t.ShortDefinition(), query) * definitionWeight
		combined := max(titleScore, defScore)
		if combined > relevanceThreshold {
			hits = append(hits, result.NewTopic(t, combined))
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score() > hits[j].Score() })
	return truncate(hits, limit), nil
}

// searchSections scores heading and (down-weighted) content, attaching a
// content preview to each hit.
func (s *Service) searchSections(ctx context.Context, query string, limit int) ([]result.Section, error) {
	all, err := s.sections.GetAllSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all sections: %w", err)
	}
	metrics.SearchCorpusSize.WithLabelValues("section").Observe(float64(len(all)))

	var hits []result.Section
	for _, sec := range all {
		headingScore := relevance(sec.Heading(), query)
		contentScore := relevance(sec.Content(), query) * contentWeight
		combined := max(headingScore, contentScore)
		if combined > relevanceThreshold {
			hits = append(hits, result.NewSection(sec, preview(sec.Content()), combined))
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score() > hits[j].Score() })
	return truncate(hits, limit), nil
}

// searchCategories scores name and (down-weighted) slug and reports the
// topic count per matched category.
func (s *Service) searchCategories(ctx context.Context, query string, limit int) ([]result.Category, error) {
	all, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all categories: %w", err)
	}
	metrics.SearchCorpusSize.WithLabelValues("category").Observe(float64(len(all)))

	topics, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all topics: %w", err)
	}
	counts := make(map[int]int, len(all))
	for _, t := range topics {
		counts[t.CategoryID()]++
	}

	var hits []result.Category
	for _, c := range all {
		nameScore := relevance(c.Name(), query)
		slugScore := relevance(c.Slug(), query) * slugWeight
		combined := max(nameScore, slugScore)
		if combined > relevanceThreshold {
			hits = append(hits, result.NewCategory(c, counts[c.ID()], combined))
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score() > hits[j].Score() })
	return truncate(hits, limit), nil
}

// preview returns the first 200 runes of content with a trailing ellipsis
// marker when truncated.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLen {
		return content
	}
	return string(runes[:previewLen]) + "..."
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
