package tracuu

import (
	"context"

	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	"github.com/hoclieu/tracuu/internal/domain/search/result"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
	categoryuc "github.com/hoclieu/tracuu/internal/usecase/category"
	sectionuc "github.com/hoclieu/tracuu/internal/usecase/section"
	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, query string, limit int, tagIDs []int) (result.Response, error)
}

func (m *mockSearchUC) Search(
	ctx context.Context, query string, limit int, tagIDs []int,
) (result.Response, error) {
	return m.searchFn(ctx, query, limit, tagIDs)
}

// --- relatedUseCase mock ---

type mockRelatedUC struct {
	findFn func(ctx context.Context, topicID, topN int) ([]result.RelatedTopic, error)
}

func (m *mockRelatedUC) FindRelated(
	ctx context.Context, topicID, topN int,
) ([]result.RelatedTopic, error) {
	return m.findFn(ctx, topicID, topN)
}

// --- topicUseCase mock ---

type mockTopicUC struct {
	createFn    func(ctx context.Context, title, shortDefinition string, categoryID int) (domtopic.Topic, error)
	getFn       func(ctx context.Context, id int) (topicuc.Detail, error)
	listFn      func(ctx context.Context, skip, limit int) ([]domtopic.Topic, error)
	updateFn    func(ctx context.Context, id int, params topicuc.UpdateParams) (domtopic.Topic, error)
	deleteFn    func(ctx context.Context, id int) error
	attachTagFn func(ctx context.Context, topicID, tagID int) error
	detachTagFn func(ctx context.Context, topicID, tagID int) error
}

func (m *mockTopicUC) Create(
	ctx context.Context, title, shortDefinition string, categoryID int,
) (domtopic.Topic, error) {
	return m.createFn(ctx, title, shortDefinition, categoryID)
}

func (m *mockTopicUC) Get(ctx context.Context, id int) (topicuc.Detail, error) {
	return m.getFn(ctx, id)
}

func (m *mockTopicUC) List(ctx context.Context, skip, limit int) ([]domtopic.Topic, error) {
	return m.listFn(ctx, skip, limit)
}

func (m *mockTopicUC) Update(
	ctx context.Context, id int, params topicuc.UpdateParams,
) (domtopic.Topic, error) {
	return m.updateFn(ctx, id, params)
}

func (m *mockTopicUC) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTopicUC) AttachTag(ctx context.Context, topicID, tagID int) error {
	return m.attachTagFn(ctx, topicID, tagID)
}

func (m *mockTopicUC) DetachTag(ctx context.Context, topicID, tagID int) error {
	return m.detachTagFn(ctx, topicID, tagID)
}

// --- sectionUseCase mock ---

type mockSectionUC struct {
	createFn      func(ctx context.Context, params sectionuc.CreateParams) (domsection.Section, error)
	getFn         func(ctx context.Context, id int) (domsection.Section, error)
	listByTopicFn func(ctx context.Context, topicID int) ([]domsection.Section, error)
	updateFn      func(ctx context.Context, id int, params sectionuc.UpdateParams) (domsection.Section, error)
	deleteFn      func(ctx context.Context, id int) error
}

func (m *mockSectionUC) Create(
	ctx context.Context, params sectionuc.CreateParams,
) (domsection.Section, error) {
	return m.createFn(ctx, params)
}

func (m *mockSectionUC) Get(ctx context.Context, id int) (domsection.Section, error) {
	return m.getFn(ctx, id)
}

func (m *mockSectionUC) ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error) {
	return m.listByTopicFn(ctx, topicID)
}

func (m *mockSectionUC) Update(
	ctx context.Context, id int, params sectionuc.UpdateParams,
) (domsection.Section, error) {
	return m.updateFn(ctx, id, params)
}

func (m *mockSectionUC) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

// --- categoryUseCase mock ---

type mockCategoryUC struct {
	createFn func(ctx context.Context, name, slug string) (domcategory.Category, error)
	getFn    func(ctx context.Context, id int) (domcategory.Category, error)
	listFn   func(ctx context.Context) ([]categoryuc.Summary, error)
	updateFn func(ctx context.Context, id int, name, slug string) (domcategory.Category, error)
	deleteFn func(ctx context.Context, id int) error
}

func (m *mockCategoryUC) Create(
	ctx context.Context, name, slug string,
) (domcategory.Category, error) {
	return m.createFn(ctx, name, slug)
}

func (m *mockCategoryUC) Get(ctx context.Context, id int) (domcategory.Category, error) {
	return m.getFn(ctx, id)
}

func (m *mockCategoryUC) List(ctx context.Context) ([]categoryuc.Summary, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryUC) Update(
	ctx context.Context, id int, name, slug string,
) (domcategory.Category, error) {
	return m.updateFn(ctx, id, name, slug)
}

func (m *mockCategoryUC) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

// --- tagUseCase mock ---

type mockTagUC struct {
	createFn   func(ctx context.Context, name, slug, description string) (domtag.Tag, error)
	getFn      func(ctx context.Context, id int) (domtag.Tag, error)
	listFn     func(ctx context.Context) ([]domtag.Tag, error)
	updateFn   func(ctx context.Context, id int, name, slug, description string) (domtag.Tag, error)
	deleteFn   func(ctx context.Context, id int) error
	topicIDsFn func(ctx context.Context, id int) ([]int, error)
}

func (m *mockTagUC) Create(
	ctx context.Context, name, slug, description string,
) (domtag.Tag, error) {
	return m.createFn(ctx, name, slug, description)
}

func (m *mockTagUC) Get(ctx context.Context, id int) (domtag.Tag, error) {
	return m.getFn(ctx, id)
}

func (m *mockTagUC) List(ctx context.Context) ([]domtag.Tag, error) {
	return m.listFn(ctx)
}

func (m *mockTagUC) Update(
	ctx context.Context, id int, name, slug, description string,
) (domtag.Tag, error) {
	return m.updateFn(ctx, id, name, slug, description)
}

func (m *mockTagUC) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTagUC) TopicIDs(ctx context.Context, id int) ([]int, error) {
	return m.topicIDsFn(ctx, id)
}

// --- helpers ---

func testClient(
	searchSvc searchUseCase,
	relatedSvc relatedUseCase,
	topicSvc topicUseCase,
) *Client {
	return &Client{
		searchSvc:  searchSvc,
		relatedSvc: relatedSvc,
		topicSvc:   topicSvc,
	}
}
