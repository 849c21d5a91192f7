package category

import (
	"context"

	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

type mockCategories struct {
	createFn func(ctx context.Context, c domcategory.Category) (domcategory.Category, error)
	getFn    func(ctx context.Context, id int) (domcategory.Category, error)
	getAllFn func(ctx context.Context) ([]domcategory.Category, error)
	updateFn func(ctx context.Context, c domcategory.Category) error
	deleteFn func(ctx context.Context, id int) error
}

func (m *mockCategories) Create(ctx context.Context, c domcategory.Category) (domcategory.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return c.WithID(1), nil
}

func (m *mockCategories) Get(ctx context.Context, id int) (domcategory.Category, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domcategory.Reconstruct(id, "OOP", "oop"), nil
}

func (m *mockCategories) GetAllCategories(ctx context.Context) ([]domcategory.Category, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockCategories) Update(ctx context.Context, c domcategory.Category) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockCategories) Delete(ctx context.Context, id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTopics struct {
	getAllFn func(ctx context.Context) ([]domtopic.Topic, error)
}

func (m *mockTopics) GetAllTopics(ctx context.Context) ([]domtopic.Topic, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}
