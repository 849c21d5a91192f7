package tracuu

import (
	"context"
	"fmt"
	"time"
)

const defaultSearchLimit = 10

// SearchService runs relevance-ranked queries over the knowledge base.
type SearchService struct {
	svc searchUseCase
	obs *observer
}

// Query searches topics, sections and categories for the given text.
// Matching is diacritic-insensitive, so "ke thua" finds "Kế thừa".
// Limit caps the number of results per entity kind (0 = default of 10).
// Tags, when non-empty, restricts topic results to topics carrying any of
// the given tag ids.
func (s *SearchService) Query(
	ctx context.Context, query string, limit int, tags ...int,
) (_ SearchResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search.query", start, err) }()

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	resp, err := s.svc.Search(ctx, query, limit, tags)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	return searchFromDomain(resp), nil
}
