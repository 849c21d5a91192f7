package tag

import (
	"context"
	"fmt"

	"github.com/hoclieu/tracuu/internal/domain"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
)

// Service implements tag CRUD over the persistence contracts.
type Service struct {
	tags   TagStore
	topics TopicLinker
}

// NewService creates a tag service.
func NewService(tags TagStore, topics TopicLinker) *Service {
	return &Service{tags: tags, topics: topics}
}

// Create validates and stores a new tag with a unique slug.
func (s *Service) Create(ctx context.Context, name, slug, description string) (domtag.Tag, error) {
	tg, err := domtag.New(name, slug, description)
	if err != nil {
		return domtag.Tag{}, err
	}

	if err := s.ensureSlugFree(ctx, tg.Slug(), 0); err != nil {
		return domtag.Tag{}, err
	}

	created, err := s.tags.Create(ctx, tg)
	if err != nil {
		return domtag.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return created, nil
}

// Get returns a tag by id.
func (s *Service) Get(ctx context.Context, id int) (domtag.Tag, error) {
	return s.tags.Get(ctx, id)
}

// List returns every tag, ordered by id.
func (s *Service) List(ctx context.Context) ([]domtag.Tag, error) {
	return s.tags.GetAllTags(ctx)
}

// Update renames a tag, keeping the slug unique.
func (s *Service) Update(ctx context.Context, id int, name, slug, description string) (domtag.Tag, error) {
	if _, err := s.tags.Get(ctx, id); err != nil {
		return domtag.Tag{}, err
	}

	tg, err := domtag.New(name, slug, description)
	if err != nil {
		return domtag.Tag{}, err
	}
	tg = tg.WithID(id)

	if err := s.ensureSlugFree(ctx, tg.Slug(), id); err != nil {
		return domtag.Tag{}, err
	}
	if err := s.tags.Update(ctx, tg); err != nil {
		return domtag.Tag{}, fmt.Errorf("update tag: %w", err)
	}
	return tg, nil
}

// Delete detaches the tag from every topic carrying it, then removes it.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.tags.Get(ctx, id); err != nil {
		return err
	}
	topicIDs, err := s.topics.TopicIDsByTag(ctx, id)
	if err != nil {
		return fmt.Errorf("list tagged topics: %w", err)
	}
	for _, topicID := range topicIDs {
		if err := s.topics.DetachTag(ctx, topicID, id); err != nil {
			return fmt.Errorf("detach tag from topic %d: %w", topicID, err)
		}
	}
	return s.tags.Delete(ctx, id)
}

// TopicIDs returns the ids of topics carrying a tag.
func (s *Service) TopicIDs(ctx context.Context, id int) ([]int, error) {
	if _, err := s.tags.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.topics.TopicIDsByTag(ctx, id)
}

func (s *Service) ensureSlugFree(ctx context.Context, slug string, selfID int) error {
	all, err := s.tags.GetAllTags(ctx)
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
