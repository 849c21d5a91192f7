package topic

import (
	"context"
	"fmt"

	"github.com/hoclieu/tracuu/internal/domain"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
	"github.com/hoclieu/tracuu/internal/textnorm"
)

const (
	// DefaultListLimit applies when a list request carries no limit.
	DefaultListLimit = 100
	// MaxListLimit caps any list request.
	MaxListLimit = 1000
)

// Detail is a topic together with its ordered sections.
type Detail struct {
	Topic    domtopic.Topic
	Sections []domsection.Section
}

// UpdateParams carries the mutable topic fields. Nil means keep current.
type UpdateParams struct {
	Title           *string
	ShortDefinition *string
	CategoryID      *int
}

// Service implements topic CRUD over the persistence contracts.
type Service struct {
	topics     TopicStore
	sections   SectionStore
	categories CategoryChecker
	tags       TagChecker
}

// NewService creates a topic service.
func NewService(topics TopicStore, sections SectionStore, categories CategoryChecker, tags TagChecker) *Service {
	return &Service{topics: topics, sections: sections, categories: categories, tags: tags}
}

// Create validates and stores a new topic.
// Titles are unique under diacritic folding, so "Kế thừa" and "Ke thua" collide.
func (s *Service) Create(ctx context.Context, title, shortDefinition string, categoryID int) (domtopic.Topic, error) {
	t, err := domtopic.New(title, shortDefinition, categoryID)
	if err != nil {
		return domtopic.Topic{}, err
	}

	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return domtopic.Topic{}, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return domtopic.Topic{}, domain.ErrCategoryNotFound
	}

	if err := s.ensureTitleFree(ctx, title, 0); err != nil {
		return domtopic.Topic{}, err
	}

	created, err := s.topics.Create(ctx, t)
	if err != nil {
		return domtopic.Topic{}, fmt.Errorf("create topic: %w", err)
	}
	return created, nil
}

// Get returns a topic with its sections ordered by position.
func (s *Service) Get(ctx context.Context, id int) (Detail, error) {
	t, err := s.topics.Get(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	sections, err := s.sections.ListByTopic(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("load sections: %w", err)
	}
	return Detail{Topic: t, Sections: sections}, nil
}

// List returns a page of topics ordered by id.
func (s *Service) List(ctx context.Context, skip, limit int) ([]domtopic.Topic, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	all, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// Update applies the given fields to an existing topic.
func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (domtopic.Topic, error) {
	current, err := s.topics.Get(ctx, id)
	if err != nil {
		return domtopic.Topic{}, err
	}

	title := current.Title()
	if params.Title != nil {
		title = *params.Title
	}
	definition := current.ShortDefinition()
	if params.ShortDefinition != nil {
		definition = *params.ShortDefinition
	}
	categoryID := current.CategoryID()
	if params.CategoryID != nil {
		categoryID = *params.CategoryID
	}

	if _, err := domtopic.New(title, definition, categoryID); err != nil {
		return domtopic.Topic{}, err
	}
	if params.CategoryID != nil {
		ok, err := s.categories.Exists(ctx, categoryID)
		if err != nil {
			return domtopic.Topic{}, fmt.Errorf("check category: %w", err)
		}
		if !ok {
			return domtopic.Topic{}, domain.ErrCategoryNotFound
		}
	}
	if params.Title != nil {
		if err := s.ensureTitleFree(ctx, title, id); err != nil {
			return domtopic.Topic{}, err
		}
	}

	updated := domtopic.Reconstruct(id, title, definition, categoryID, current.CreatedAt(), current.TagIDs())
	if err := s.topics.Update(ctx, updated); err != nil {
		return domtopic.Topic{}, fmt.Errorf("update topic: %w", err)
	}
	return updated, nil
}

// Delete removes a topic and cascades to its sections and tag links.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.sections.DeleteByTopic(ctx, id); err != nil {
		return fmt.Errorf("cascade sections: %w", err)
	}
	return s.topics.Delete(ctx, id)
}

// AttachTag links an existing tag to a topic.
func (s *Service) AttachTag(ctx context.Context, topicID, tagID int) error {
	ok, err := s.tags.Exists(ctx, tagID)
	if err != nil {
		return fmt.Errorf("check tag: %w", err)
	}
	if !ok {
		return domain.ErrTagNotFound
	}
	return s.topics.AttachTag(ctx, topicID, tagID)
}

// DetachTag removes a tag link from a topic.
func (s *Service) DetachTag(ctx context.Context, topicID, tagID int) error {
	return s.topics.DetachTag(ctx, topicID, tagID)
}

// ensureTitleFree rejects a title already used by a different topic.
func (s *Service) ensureTitleFree(ctx context.Context, title string, selfID int) error {
	all, err := s.topics.GetAllTopics(ctx)
	if err != nil {
		return fmt.Errorf("check title: %w", err)
	}
	folded := textnorm.Normalize(title)
	for _, existing := range all {
		if existing.ID() == selfID {
			continue
		}
		if textnorm.Normalize(existing.Title()) == folded {
			return fmt.Errorf("title %q: %w", title, domain.ErrAlreadyExists)
		}
	}
	return nil
}
