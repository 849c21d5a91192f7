package tracuu

import (
	"context"
	"fmt"
	"time"
)

// CategoryService manages categories.
type CategoryService struct {
	svc categoryUseCase
	obs *observer
}

// Create creates a category. An empty slug is derived from the name.
func (s *CategoryService) Create(
	ctx context.Context, name, slug string,
) (_ Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("category.create", start, err) }()

	cat, err := s.svc.Create(ctx, name, slug)
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return categoryFromDomain(cat), nil
}

// Get retrieves a category by id.
func (s *CategoryService) Get(ctx context.Context, id int) (_ Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("category.get", start, err) }()

	cat, err := s.svc.Get(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return categoryFromDomain(cat), nil
}

// List returns all categories with their topic counts, ordered by id.
func (s *CategoryService) List(ctx context.Context) (_ []CategorySummary, err error) {
	start := time.Now()
	defer func() { s.obs.observe("category.list", start, err) }()

	summaries, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]CategorySummary, len(summaries))
	for i := range summaries {
		out[i] = CategorySummary{
			Category:   categoryFromDomain(summaries[i].Category),
			TopicCount: summaries[i].TopicCount,
		}
	}
	return out, nil
}

// Update renames a category. An empty slug is derived from the name.
func (s *CategoryService) Update(
	ctx context.Context, id int, name, slug string,
) (_ Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("category.update", start, err) }()

	cat, err := s.svc.Update(ctx, id, name, slug)
	if err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return categoryFromDomain(cat), nil
}

// Delete removes a category. Categories still holding topics are rejected.
func (s *CategoryService) Delete(ctx context.Context, id int) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("category.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
