package tracuu

import (
	"context"
	"fmt"
	"time"
)

// TagService manages tags.
type TagService struct {
	svc tagUseCase
	obs *observer
}

// Create creates a tag. An empty slug is derived from the name.
func (s *TagService) Create(
	ctx context.Context, name, slug, description string,
) (_ Tag, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tag.create", start, err) }()

	t, err := s.svc.Create(ctx, name, slug, description)
	if err != nil {
		return Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return tagFromDomain(t), nil
}

// Get retrieves a tag by id.
func (s *TagService) Get(ctx context.Context, id int) (_ Tag, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tag.get", start, err) }()

	t, err := s.svc.Get(ctx, id)
	if err != nil {
		return Tag{}, fmt.Errorf("get tag: %w", err)
	}
	return tagFromDomain(t), nil
}

// List returns all tags ordered by id.
func (s *TagService) List(ctx context.Context) (_ []Tag, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tag.list", start, err) }()

	tags, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	out := make([]Tag, len(tags))
	for i := range tags {
		out[i] = tagFromDomain(tags[i])
	}
	return out, nil
}

// Update renames a tag. An empty slug is derived from the name.
func (s *TagService) Update(
	ctx context.Context, id int, name, slug, description string,
) (_ Tag, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tag.update", start, err) }()

	t, err := s.svc.Update(ctx, id, name, slug, description)
	if err != nil {
		return Tag{}, fmt.Errorf("update tag: %w", err)
	}
	return tagFromDomain(t), nil
}

// Delete removes a tag and detaches it from every topic.
func (s *TagService) Delete(ctx context.Context, id int) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("tag.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// TopicIDs returns the ids of topics carrying the tag, ascending.
func (s *TagService) TopicIDs(ctx context.Context, id int) (_ []int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tag.topic_ids", start, err) }()

	ids, err := s.svc.TopicIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tag topics: %w", err)
	}
	return ids, nil
}
