package chi

import (
	"context"
	"net/http/httptest"
	"sort"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hoclieu/tracuu/internal/config"
	"github.com/hoclieu/tracuu/internal/domain"
	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
	categoryuc "github.com/hoclieu/tracuu/internal/usecase/category"
	healthuc "github.com/hoclieu/tracuu/internal/usecase/health"
	relateduc "github.com/hoclieu/tracuu/internal/usecase/related"
	searchuc "github.com/hoclieu/tracuu/internal/usecase/search"
	sectionuc "github.com/hoclieu/tracuu/internal/usecase/section"
	taguc "github.com/hoclieu/tracuu/internal/usecase/tag"
	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
)

// memDB is a shared in-memory backing store for handler tests.
type memDB struct {
	topics     map[int]domtopic.Topic
	sections   map[int]domsection.Section
	categories map[int]domcategory.Category
	tags       map[int]domtag.Tag
	seq        int
	pingErr    error
}

func newMemDB() *memDB {
	return &memDB{
		topics:     map[int]domtopic.Topic{},
		sections:   map[int]domsection.Section{},
		categories: map[int]domcategory.Category{},
		tags:       map[int]domtag.Tag{},
	}
}

func (db *memDB) nextID() int {
	db.seq++
	return db.seq
}

func (db *memDB) Ping(context.Context) error { return db.pingErr }

type fakeTopics struct{ db *memDB }

func (f *fakeTopics) Create(_ context.Context, t domtopic.Topic) (domtopic.Topic, error) {
	t = t.WithID(f.db.nextID())
	f.db.topics[t.ID()] = t
	return t, nil
}

func (f *fakeTopics) Get(_ context.Context, id int) (domtopic.Topic, error) {
	t, ok := f.db.topics[id]
	if !ok {
		return domtopic.Topic{}, domain.ErrTopicNotFound
	}
	return t, nil
}

func (f *fakeTopics) GetAllTopics(context.Context) ([]domtopic.Topic, error) {
	out := make([]domtopic.Topic, 0, len(f.db.topics))
	for _, t := range f.db.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (f *fakeTopics) Update(_ context.Context, t domtopic.Topic) error {
	if _, ok := f.db.topics[t.ID()]; !ok {
		return domain.ErrTopicNotFound
	}
	f.db.topics[t.ID()] = t
	return nil
}

func (f *fakeTopics) Delete(_ context.Context, id int) error {
	if _, ok := f.db.topics[id]; !ok {
		return domain.ErrTopicNotFound
	}
	delete(f.db.topics, id)
	return nil
}

func (f *fakeTopics) Exists(_ context.Context, id int) (bool, error) {
	_, ok := f.db.topics[id]
	return ok, nil
}

func (f *fakeTopics) AttachTag(_ context.Context, topicID, tagID int) error {
	t, ok := f.db.topics[topicID]
	if !ok {
		return domain.ErrTopicNotFound
	}
	for _, existing := range t.TagIDs() {
		if existing == tagID {
			return nil
		}
	}
	f.db.topics[topicID] = domtopic.Reconstruct(
		t.ID(), t.Title(), t.ShortDefinition(), t.CategoryID(), t.CreatedAt(),
		append(t.TagIDs(), tagID),
	)
	return nil
}

func (f *fakeTopics) DetachTag(_ context.Context, topicID, tagID int) error {
	t, ok := f.db.topics[topicID]
	if !ok {
		return domain.ErrTopicNotFound
	}
	remaining := make([]int, 0, len(t.TagIDs()))
	for _, existing := range t.TagIDs() {
		if existing != tagID {
			remaining = append(remaining, existing)
		}
	}
	f.db.topics[topicID] = domtopic.Reconstruct(
		t.ID(), t.Title(), t.ShortDefinition(), t.CategoryID(), t.CreatedAt(), remaining,
	)
	return nil
}

func (f *fakeTopics) TopicIDsByTag(_ context.Context, tagID int) ([]int, error) {
	var ids []int
	for id, t := range f.db.topics {
		for _, existing := range t.TagIDs() {
			if existing == tagID {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Ints(ids)
	return ids, nil
}

type fakeSections struct{ db *memDB }

func (f *fakeSections) Create(_ context.Context, s domsection.Section) (domsection.Section, error) {
	s = s.WithID(f.db.nextID())
	f.db.sections[s.ID()] = s
	return s, nil
}

func (f *fakeSections) Get(_ context.Context, id int) (domsection.Section, error) {
	s, ok := f.db.sections[id]
	if !ok {
		return domsection.Section{}, domain.ErrSectionNotFound
	}
	return s, nil
}

func (f *fakeSections) GetAllSections(context.Context) ([]domsection.Section, error) {
	out := make([]domsection.Section, 0, len(f.db.sections))
	for _, s := range f.db.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (f *fakeSections) ListByTopic(_ context.Context, topicID int) ([]domsection.Section, error) {
	var out []domsection.Section
	for _, s := range f.db.sections {
		if s.TopicID() == topicID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex() < out[j].OrderIndex() })
	return out, nil
}

func (f *fakeSections) Update(_ context.Context, s domsection.Section) error {
	if _, ok := f.db.sections[s.ID()]; !ok {
		return domain.ErrSectionNotFound
	}
	f.db.sections[s.ID()] = s
	return nil
}

func (f *fakeSections) Delete(_ context.Context, id int) error {
	if _, ok := f.db.sections[id]; !ok {
		return domain.ErrSectionNotFound
	}
	delete(f.db.sections, id)
	return nil
}

func (f *fakeSections) DeleteByTopic(_ context.Context, topicID int) error {
	for id, s := range f.db.sections {
		if s.TopicID() == topicID {
			delete(f.db.sections, id)
		}
	}
	return nil
}

type fakeCategories struct{ db *memDB }

func (f *fakeCategories) Create(_ context.Context, c domcategory.Category) (domcategory.Category, error) {
	c = c.WithID(f.db.nextID())
	f.db.categories[c.ID()] = c
	return c, nil
}

func (f *fakeCategories) Get(_ context.Context, id int) (domcategory.Category, error) {
	c, ok := f.db.categories[id]
	if !ok {
		return domcategory.Category{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategories) GetAllCategories(context.Context) ([]domcategory.Category, error) {
	out := make([]domcategory.Category, 0, len(f.db.categories))
	for _, c := range f.db.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (f *fakeCategories) Update(_ context.Context, c domcategory.Category) error {
	if _, ok := f.db.categories[c.ID()]; !ok {
		return domain.ErrCategoryNotFound
	}
	f.db.categories[c.ID()] = c
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id int) error {
	if _, ok := f.db.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(f.db.categories, id)
	return nil
}

func (f *fakeCategories) Exists(_ context.Context, id int) (bool, error) {
	_, ok := f.db.categories[id]
	return ok, nil
}

type fakeTags struct{ db *memDB }

func (f *fakeTags) Create(_ context.Context, tg domtag.Tag) (domtag.Tag, error) {
	tg = tg.WithID(f.db.nextID())
	f.db.tags[tg.ID()] = tg
	return tg, nil
}

func (f *fakeTags) Get(_ context.Context, id int) (domtag.Tag, error) {
	tg, ok := f.db.tags[id]
	if !ok {
		return domtag.Tag{}, domain.ErrTagNotFound
	}
	return tg, nil
}

func (f *fakeTags) GetAllTags(context.Context) ([]domtag.Tag, error) {
	out := make([]domtag.Tag, 0, len(f.db.tags))
	for _, tg := range f.db.tags {
		out = append(out, tg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (f *fakeTags) Update(_ context.Context, tg domtag.Tag) error {
	if _, ok := f.db.tags[tg.ID()]; !ok {
		return domain.ErrTagNotFound
	}
	f.db.tags[tg.ID()] = tg
	return nil
}

func (f *fakeTags) Delete(_ context.Context, id int) error {
	if _, ok := f.db.tags[id]; !ok {
		return domain.ErrTagNotFound
	}
	delete(f.db.tags, id)
	return nil
}

func (f *fakeTags) Exists(_ context.Context, id int) (bool, error) {
	_, ok := f.db.tags[id]
	return ok, nil
}

// newTestServer wires the full handler stack over an in-memory store.
func newTestServer(db *memDB) *httptest.Server {
	topics := &fakeTopics{db: db}
	sections := &fakeSections{db: db}
	categories := &fakeCategories{db: db}
	tags := &fakeTags{db: db}

	cfg := config.Config{}
	cfg.ApplyDefaults()

	srv := NewServer(
		searchuc.New(topics, sections, categories),
		relateduc.New(topics),
		topicuc.NewService(topics, sections, categories, tags),
		sectionuc.NewService(sections, topics),
		categoryuc.NewService(categories, topics),
		taguc.NewService(tags, topics),
		healthuc.New(db),
		cfg.Search,
		cfg.Related,
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	srv.MountRoutes(r)
	return httptest.NewServer(r)
}
