package topic

import (
	"context"

	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

type mockTopics struct {
	createFn    func(ctx context.Context, t domtopic.Topic) (domtopic.Topic, error)
	getFn       func(ctx context.Context, id int) (domtopic.Topic, error)
	getAllFn    func(ctx context.Context) ([]domtopic.Topic, error)
	updateFn    func(ctx context.Context, t domtopic.Topic) error
	deleteFn    func(ctx context.Context, id int) error
	attachTagFn func(ctx context.Context, topicID, tagID int) error
	detachTagFn func(ctx context.Context, topicID, tagID int) error
}

func (m *mockTopics) Create(ctx context.Context, t domtopic.Topic) (domtopic.Topic, error) {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return t.WithID(1), nil
}

func (m *mockTopics) Get(ctx context.Context, id int) (domtopic.Topic, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domtopic.Topic{}, nil
}

func (m *mockTopics) GetAllTopics(ctx context.Context) ([]domtopic.Topic, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTopics) Update(ctx context.Context, t domtopic.Topic) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTopics) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTopics) AttachTag(ctx context.Context, topicID, tagID int) error {
	if m.attachTagFn != nil {
		return m.attachTagFn(ctx, topicID, tagID)
	}
	return nil
}

func (m *mockTopics) DetachTag(ctx context.Context, topicID, tagID int) error {
	if m.detachTagFn != nil {
		return m.detachTagFn(ctx, topicID, tagID)
	}
	return nil
}

type mockSections struct {
	listByTopicFn   func(ctx context.Context, topicID int) ([]domsection.Section, error)
	deleteByTopicFn func(ctx context.Context, topicID int) error
}

func (m *mockSections) ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error) {
	if m.listByTopicFn != nil {
		return m.listByTopicFn(ctx, topicID)
	}
	return nil, nil
}

func (m *mockSections) DeleteByTopic(ctx context.Context, topicID int) error {
	if m.deleteByTopicFn != nil {
		return m.deleteByTopicFn(ctx, topicID)
	}
	return nil
}

type mockChecker struct {
	existsFn func(ctx context.Context, id int) (bool, error)
}

func (m *mockChecker) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}
