package section

import (
	"context"
	"fmt"

	"github.com/hoclieu/tracuu/internal/domain"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
)

// CreateParams carries the fields of a new section.
type CreateParams struct {
	TopicID     int
	OrderIndex  int
	Heading     string
	Content     string
	ImageURL    string
	CodeSnippet string
	Language    string
}

// UpdateParams carries the mutable section fields. Nil means keep current.
type UpdateParams struct {
	OrderIndex  *int
	Heading     *string
	Content     *string
	ImageURL    *string
	CodeSnippet *string
	Language    *string
}

// Service implements section CRUD over the persistence contracts.
type Service struct {
	sections SectionStore
	topics   TopicChecker
}

// NewService creates a section service.
func NewService(sections SectionStore, topics TopicChecker) *Service {
	return &Service{sections: sections, topics: topics}
}

// Create validates and stores a new section under an existing topic.
func (s *Service) Create(ctx context.Context, params CreateParams) (domsection.Section, error) {
	sec, err := domsection.New(
		params.TopicID, params.OrderIndex, params.Heading,
		params.Content, params.ImageURL, params.CodeSnippet, params.Language,
	)
	if err != nil {
		return domsection.Section{}, err
	}

	ok, err := s.topics.Exists(ctx, params.TopicID)
	if err != nil {
		return domsection.Section{}, fmt.Errorf("check topic: %w", err)
	}
	if !ok {
		return domsection.Section{}, domain.ErrTopicNotFound
	}

	created, err := s.sections.Create(ctx, sec)
	if err != nil {
		return domsection.Section{}, fmt.Errorf("create section: %w", err)
	}
	return created, nil
}

// Get returns a section by id.
func (s *Service) Get(ctx context.Context, id int) (domsection.Section, error) {
	return s.sections.Get(ctx, id)
}

// ListByTopic returns a topic's sections ordered by position.
func (s *Service) ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error) {
	ok, err := s.topics.Exists(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("check topic: %w", err)
	}
	if !ok {
		return nil, domain.ErrTopicNotFound
	}
	return s.sections.ListByTopic(ctx, topicID)
}

// Update applies the given fields to an existing section.
func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (domsection.Section, error) {
	current, err := s.sections.Get(ctx, id)
	if err != nil {
		return domsection.Section{}, err
	}

	orderIndex := current.OrderIndex()
	if params.OrderIndex != nil {
		orderIndex = *params.OrderIndex
	}
	heading := current.Heading()
	if params.Heading != nil {
		heading = *params.Heading
	}
	content := current.Content()
	if params.Content != nil {
		content = *params.Content
	}
	imageURL := current.ImageURL()
	if params.ImageURL != nil {
		imageURL = *params.ImageURL
	}
	codeSnippet := current.CodeSnippet()
	if params.CodeSnippet != nil {
		codeSnippet = *params.CodeSnippet
	}
	language := current.Language()
	if params.Language != nil {
		language = *params.Language
	}

	if _, err := domsection.New(current.TopicID(), orderIndex, heading, content, imageURL, codeSnippet, language); err != nil {
		return domsection.Section{}, err
	}

	updated := domsection.Reconstruct(id, current.TopicID(), orderIndex, heading, content, imageURL, codeSnippet, language)
	if err := s.sections.Update(ctx, updated); err != nil {
		return domsection.Section{}, fmt.Errorf("update section: %w", err)
	}
	return updated, nil
}

// Delete removes a section.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.sections.Delete(ctx, id)
}
