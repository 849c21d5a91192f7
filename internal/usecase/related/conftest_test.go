package related

import (
	"context"

	"github.com/hoclieu/tracuu/internal/domain/topic"
)

// mockTopics implements TopicReader for tests.
type mockTopics struct {
	topics []topic.Topic
	err    error
}

func (m *mockTopics) GetAllTopics(_ context.Context) ([]topic.Topic, error) {
	return m.topics, m.err
}
