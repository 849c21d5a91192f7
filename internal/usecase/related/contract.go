package related

import (
	"context"

	"github.com/hoclieu/tracuu/internal/domain/topic"
)

// TopicReader supplies the topic corpus snapshot for ranking.
type TopicReader interface {
	GetAllTopics(ctx context.Context) ([]topic.Topic, error)
}
