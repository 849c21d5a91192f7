package search

import (
	"context"

	"github.com/hoclieu/tracuu/internal/domain/category"
	"github.com/hoclieu/tracuu/internal/domain/section"
	"github.com/hoclieu/tracuu/internal/domain/topic"
)

// TopicReader supplies the topic corpus snapshot.
type TopicReader interface {
	GetAllTopics(ctx context.Context) ([]topic.Topic, error)
}

// SectionReader supplies the section corpus snapshot.
type SectionReader interface {
	GetAllSections(ctx context.Context) ([]section.Section, error)
}

// CategoryReader supplies the category corpus snapshot.
type CategoryReader interface {
	GetAllCategories(ctx context.Context) ([]category.Category, error)
}
