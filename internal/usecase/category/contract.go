package category

import (
	"context"

	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

// CategoryStore is the persistence surface this service needs.
type CategoryStore interface {
	Create(ctx context.Context, c domcategory.Category) (domcategory.Category, error)
	Get(ctx context.Context, id int) (domcategory.Category, error)
	GetAllCategories(ctx context.Context) ([]domcategory.Category, error)
	Update(ctx context.Context, c domcategory.Category) error
	Delete(ctx context.Context, id int) error
}

// TopicReader exposes the topic corpus for emptiness checks and counts.
type TopicReader interface {
	GetAllTopics(ctx context.Context) ([]domtopic.Topic, error)
}
