package search

import (
	"context"

	"github.com/hoclieu/tracuu/internal/domain/category"
	"github.com/hoclieu/tracuu/internal/domain/section"
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

// mockSections implements SectionReader for tests.
type mockSections struct {
	sections []section.Section
	err      error
}

func (m *mockSections) GetAllSections(_ context.Context) ([]section.Section, error) {
	return m.sections, m.err
}

// mockCategories implements CategoryReader for tests.
type mockCategories struct {
	categories []category.Category
	err        error
}

func (m *mockCategories) GetAllCategories(_ context.Context) ([]category.Category, error) {
	return m.categories, m.err
}
