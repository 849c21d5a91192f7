package category

import (
	"context"
	"fmt"

	"github.com/hoclieu/tracuu/internal/domain"
	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
)

// Summary is a category with its topic count.
type Summary struct {
	Category   domcategory.Category
	TopicCount int
}

// Service implements category CRUD over the persistence contracts.
type Service struct {
	categories CategoryStore
	topics     TopicReader
}

// NewService creates a category service.
func NewService(categories CategoryStore, topics TopicReader) *Service {
	return &Service{categories: categories, topics: topics}
}

// Create validates and stores a new category. The slug is derived from
// the name when absent and must be unique.
func (s *Service) Create(ctx context.Context, name, slug string) (domcategory.Category, error) {
	c, err := domcategory.New(name, slug)
	if err != nil {
		return domcategory.Category{}, err
	}

	if err := s.ensureSlugFree(ctx, c.Slug(), 0); err != nil {
		return domcategory.Category{}, err
	}

	created, err := s.categories.Create(ctx, c)
	if err != nil {
		return domcategory.Category{}, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Get returns a category by id.
func (s *Service) Get(ctx context.Context, id int) (domcategory.Category, error) {
	return s.categories.Get(ctx, id)
}

// List returns every category with its topic count, ordered by id.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, nil
	}

	topics, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("count topics: %w", err)
	}
	counts := make(map[int]int, len(categories))
	for _, t := range topics {
		counts[t.CategoryID()]++
	}

	summaries := make([]Summary, len(categories))
	for i, c := range categories {
		summaries[i] = Summary{Category: c, TopicCount: counts[c.ID()]}
	}
	return summaries, nil
}

// Update renames a category, re-deriving the slug when one is not given.
func (s *Service) Update(ctx context.Context, id int, name, slug string) (domcategory.Category, error) {
	if _, err := s.categories.Get(ctx, id); err != nil {
		return domcategory.Category{}, err
	}

	c, err := domcategory.New(name, slug)
	if err != nil {
		return domcategory.Category{}, err
	}
	c = c.WithID(id)

	if err := s.ensureSlugFree(ctx, c.Slug(), id); err != nil {
		return domcategory.Category{}, err
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return domcategory.Category{}, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes an empty category. Categories with topics are rejected.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.categories.Get(ctx, id); err != nil {
		return err
	}
	topics, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return fmt.Errorf("check topics: %w", err)
	}
	for _, t := range topics {
		if t.CategoryID() == id {
			return domain.ErrCategoryNotEmpty
		}
	}
	return s.categories.Delete(ctx, id)
}

func (s *Service) ensureSlugFree(ctx context.Context, slug string, selfID int) error {
	all, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	for _, existing := range all {
		if existing.ID() == selfID {
			continue
		}
		if existing.Slug() == slug {
			return fmt.Errorf("slug %q: %w", slug, domain.ErrAlreadyExists)
		}
	}
	return nil
}
