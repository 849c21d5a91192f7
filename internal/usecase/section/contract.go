package section

import (
	"context"

	domsection "github.com/hoclieu/tracuu/internal/domain/section"
)

// SectionStore is the persistence surface this service needs.
type SectionStore interface {
	Create(ctx context.Context, s domsection.Section) (domsection.Section, error)
	Get(ctx context.Context, id int) (domsection.Section, error)
	ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error)
	Update(ctx context.Context, s domsection.Section) error
	Delete(ctx context.Context, id int) error
}

// TopicChecker verifies the parent topic exists.
type TopicChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}
