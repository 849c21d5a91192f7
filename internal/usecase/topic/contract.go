package topic

import (
	"context"

	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

// TopicStore is the persistence surface this service needs for topics.
type TopicStore interface {
	Create(ctx context.Context, t domtopic.Topic) (domtopic.Topic, error)
	Get(ctx context.Context, id int) (domtopic.Topic, error)
	GetAllTopics(ctx context.Context) ([]domtopic.Topic, error)
	Update(ctx context.Context, t domtopic.Topic) error
	Delete(ctx context.Context, id int) error
	AttachTag(ctx context.Context, topicID, tagID int) error
	DetachTag(ctx context.Context, topicID, tagID int) error
}

// SectionStore lists and cascades a topic's sections.
type SectionStore interface {
	ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error)
	DeleteByTopic(ctx context.Context, topicID int) error
}

// CategoryChecker verifies a category exists.
type CategoryChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// TagChecker verifies a tag exists.
type TagChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}
