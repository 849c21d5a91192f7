package tracuu

import (
	"context"
	"fmt"
	"time"

	sectionuc "github.com/hoclieu/tracuu/internal/usecase/section"
)

// SectionParams carries the fields of a new section.
type SectionParams struct {
	TopicID     int
	OrderIndex  int
	Heading     string
	Content     string
	ImageURL    string
	CodeSnippet string
	Language    string
}

// SectionUpdate carries the mutable section fields. Nil means keep current.
type SectionUpdate struct {
	OrderIndex  *int
	Heading     *string
	Content     *string
	ImageURL    *string
	CodeSnippet *string
	Language    *string
}

// SectionService manages topic sections.
type SectionService struct {
	svc sectionUseCase
	obs *observer
}

// Create adds a section to an existing topic.
func (s *SectionService) Create(
	ctx context.Context, params SectionParams,
) (_ Section, err error) {
	start := time.Now()
	defer func() { s.obs.observe("section.create", start, err) }()

	sec, err := s.svc.Create(ctx, sectionuc.CreateParams{
		TopicID:     params.TopicID,
		OrderIndex:  params.OrderIndex,
		Heading:     params.Heading,
		Content:     params.Content,
		ImageURL:    params.ImageURL,
		CodeSnippet: params.CodeSnippet,
		Language:    params.Language,
	})
	if err != nil {
		return Section{}, fmt.Errorf("create section: %w", err)
	}
	return sectionFromDomain(sec), nil
}

// Get retrieves a section by id.
func (s *SectionService) Get(ctx context.Context, id int) (_ Section, err error) {
	start := time.Now()
	defer func() { s.obs.observe("section.get", start, err) }()

	sec, err := s.svc.Get(ctx, id)
	if err != nil {
		return Section{}, fmt.Errorf("get section: %w", err)
	}
	return sectionFromDomain(sec), nil
}

// ListByTopic returns a topic's sections ordered by their order index.
func (s *SectionService) ListByTopic(
	ctx context.Context, topicID int,
) (_ []Section, err error) {
	start := time.Now()
	defer func() { s.obs.observe("section.list", start, err) }()

	sections, err := s.svc.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	out := make([]Section, len(sections))
	for i := range sections {
		out[i] = sectionFromDomain(sections[i])
	}
	return out, nil
}

// Update changes the set fields of a section and leaves the rest untouched.
func (s *SectionService) Update(
	ctx context.Context, id int, upd SectionUpdate,
) (_ Section, err error) {
	start := time.Now()
	defer func() { s.obs.observe("section.update", start, err) }()

	sec, err := s.svc.Update(ctx, id, sectionuc.UpdateParams{
		OrderIndex:  upd.OrderIndex,
		Heading:     upd.Heading,
		Content:     upd.Content,
		ImageURL:    upd.ImageURL,
		CodeSnippet: upd.CodeSnippet,
		Language:    upd.Language,
	})
	if err != nil {
		return Section{}, fmt.Errorf("update section: %w", err)
	}
	return sectionFromDomain(sec), nil
}

// Delete removes a section.
func (s *SectionService) Delete(ctx context.Context, id int) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("section.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}
