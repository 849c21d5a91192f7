package tag

import (
	"context"

	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
)

type mockTags struct {
	createFn func(ctx context.Context, tg domtag.Tag) (domtag.Tag, error)
	getFn    func(ctx context.Context, id int) (domtag.Tag, error)
	getAllFn func(ctx context.Context) ([]domtag.Tag, error)
	updateFn func(ctx context.Context, tg domtag.Tag) error
	deleteFn func(ctx context.Context, id int) error
}

func (m *mockTags) Create(ctx context.Context, tg domtag.Tag) (domtag.Tag, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tg)
	}
	return tg.WithID(1), nil
}

func (m *mockTags) Get(ctx context.Context, id int) (domtag.Tag, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domtag.Reconstruct(id, "python", "python", ""), nil
}

func (m *mockTags) GetAllTags(ctx context.Context) ([]domtag.Tag, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTags) Update(ctx context.Context, tg domtag.Tag) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tg)
	}
	return nil
}

func (m *mockTags) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTopicLinker struct {
	topicIDsByTagFn func(ctx context.Context, tagID int) ([]int, error)
	detachTagFn     func(ctx context.Context, topicID, tagID int) error
}

func (m *mockTopicLinker) TopicIDsByTag(ctx context.Context, tagID int) ([]int, error) {
	if m.topicIDsByTagFn != nil {
		return m.topicIDsByTagFn(ctx, tagID)
	}
	return nil, nil
}

func (m *mockTopicLinker) DetachTag(ctx context.Context, topicID, tagID int) error {
	if m.detachTagFn != nil {
		return m.detachTagFn(ctx, topicID, tagID)
	}
	return nil
}
