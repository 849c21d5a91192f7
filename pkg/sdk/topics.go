package tracuu

import (
	"context"
	"fmt"
	"time"

	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
)

const defaultRelatedTopN = 5

// TopicUpdate carries the mutable topic fields. Nil means keep current.
type TopicUpdate struct {
	Title           *string
	ShortDefinition *string
	CategoryID      *int
}

// TopicService manages topics.
type TopicService struct {
	svc        topicUseCase
	relatedSvc relatedUseCase
	obs        *observer
}

// Create creates a new topic. Titles are unique ignoring diacritics.
func (s *TopicService) Create(
	ctx context.Context, title, shortDefinition string, categoryID int,
) (_ Topic, err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.create", start, err) }()

	t, err := s.svc.Create(ctx, title, shortDefinition, categoryID)
	if err != nil {
		return Topic{}, fmt.Errorf("create topic: %w", err)
	}
	return topicFromDomain(t), nil
}

// Get retrieves a topic together with its ordered sections.
func (s *TopicService) Get(ctx context.Context, id int) (_ TopicDetail, err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.get", start, err) }()

	detail, err := s.svc.Get(ctx, id)
	if err != nil {
		return TopicDetail{}, fmt.Errorf("get topic: %w", err)
	}

	out := TopicDetail{
		Topic:    topicFromDomain(detail.Topic),
		Sections: make([]Section, len(detail.Sections)),
	}
	for i := range detail.Sections {
		out.Sections[i] = sectionFromDomain(detail.Sections[i])
	}
	return out, nil
}

// List returns topics ordered by id. Skip and limit page the result
// (limit 0 = server default of 100).
func (s *TopicService) List(ctx context.Context, skip, limit int) (_ []Topic, err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.list", start, err) }()

	topics, err := s.svc.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	out := make([]Topic, len(topics))
	for i := range topics {
		out[i] = topicFromDomain(topics[i])
	}
	return out, nil
}

// Update changes the set fields of a topic and leaves the rest untouched.
func (s *TopicService) Update(
	ctx context.Context, id int, upd TopicUpdate,
) (_ Topic, err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.update", start, err) }()

	t, err := s.svc.Update(ctx, id, topicuc.UpdateParams{
		Title:           upd.Title,
		ShortDefinition: upd.ShortDefinition,
		CategoryID:      upd.CategoryID,
	})
	if err != nil {
		return Topic{}, fmt.Errorf("update topic: %w", err)
	}
	return topicFromDomain(t), nil
}

// Delete removes a topic and all of its sections.
func (s *TopicService) Delete(ctx context.Context, id int) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}

// AttachTag links a tag to a topic. Attaching twice is a no-op.
func (s *TopicService) AttachTag(ctx context.Context, topicID, tagID int) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.attach_tag", start, err) }()

	if err = s.svc.AttachTag(ctx, topicID, tagID); err != nil {
		return fmt.Errorf("attach tag: %w", err)
	}
	return nil
}

// DetachTag unlinks a tag from a topic.
func (s *TopicService) DetachTag(ctx context.Context, topicID, tagID int) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.detach_tag", start, err) }()

	if err = s.svc.DetachTag(ctx, topicID, tagID); err != nil {
		return fmt.Errorf("detach tag: %w", err)
	}
	return nil
}

// Related returns up to topN topics most similar to the given one,
// ranked by blended text similarity (topN 0 = default of 5).
func (s *TopicService) Related(
	ctx context.Context, id, topN int,
) (_ []ScoredTopic, err error) {
	start := time.Now()
	defer func() { s.obs.observe("topic.related", start, err) }()

	if topN <= 0 {
		topN = defaultRelatedTopN
	}
	items, err := s.relatedSvc.FindRelated(ctx, id, topN)
	if err != nil {
		return nil, fmt.Errorf("related topics: %w", err)
	}
	return relatedFromDomain(items), nil
}
