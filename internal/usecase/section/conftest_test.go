package section

import (
	"context"

	domsection "github.com/hoclieu/tracuu/internal/domain/section"
)

type mockSections struct {
	createFn      func(ctx context.Context, s domsection.Section) (domsection.Section, error)
	getFn         func(ctx context.Context, id int) (domsection.Section, error)
	listByTopicFn func(ctx context.Context, topicID int) ([]domsection.Section, error)
	updateFn      func(ctx context.Context, s domsection.Section) error
	deleteFn      func(ctx context.Context, id int) error
}

func (m *mockSections) Create(ctx context.Context, s domsection.Section) (domsection.Section, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return s.WithID(1), nil
}

func (m *mockSections) Get(ctx context.Context, id int) (domsection.Section, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domsection.Section{}, nil
}

func (m *mockSections) ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error) {
	if m.listByTopicFn != nil {
		return m.listByTopicFn(ctx, topicID)
	}
	return nil, nil
}

func (m *mockSections) Update(ctx context.Context, s domsection.Section) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return nil
}

func (m *mockSections) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTopicChecker struct {
	existsFn func(ctx context.Context, id int) (bool, error)
}

func (m *mockTopicChecker) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}
