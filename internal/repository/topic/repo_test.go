package topic

import (
	"context"
	"errors"
	"testing"

	"github.com/hoclieu/tracuu/internal/domain"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

func newTestRepo() (*Repo, *mockStore) {
	ms := &mockStore{}
	return New(ms), ms
}

func testTopic(t *testing.T) domtopic.Topic {
	t.Helper()
	top, err := domtopic.New("Kế thừa", "Cơ chế kế thừa trong OOP", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return top
}

// --- Create ---

func TestCreate_HappyPath(t *testing.T) {
	repo, ms := newTestRepo()
	ctx := context.Background()

	ms.incrFn = func(_ context.Context, key string) (int64, error) {
		if key != "tracuu:seq:topic" {
			t.Errorf("unexpected sequence key: %s", key)
		}
		return 7, nil
	}
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		if key != "tracuu:topic:7" {
			t.Errorf("unexpected key: %s", key)
		}
		if fields[fieldTitle] != "Kế thừa" {
			t.Errorf("unexpected title field: %q", fields[fieldTitle])
		}
		return nil
	}
	var indexed string
	ms.saddFn = func(_ context.Context, key string, members ...string) error {
		indexed = key
		if len(members) != 1 || members[0] != "7" {
			t.Errorf("unexpected index members: %v", members)
		}
		return nil
	}

	created, err := repo.Create(ctx, testTopic(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID() != 7 {
		t.Errorf("expected id 7, got %d", created.ID())
	}
	if indexed != "tracuu:topics" {
		t.Errorf("unexpected index key: %s", indexed)
	}
}

func TestCreate_IncrError(t *testing.T) {
	repo, ms := newTestRepo()

	ms.incrFn = func(_ context.Context, _ string) (int64, error) {
		return 0, errors.New("connection lost")
	}

	if _, err := repo.Create(context.Background(), testTopic(t)); err == nil {
		t.Fatal("expected error on INCR failure")
	}
}

// --- Get ---

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo()

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{}, nil
	}

	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestGet_ParsesFields(t *testing.T) {
	repo, ms := newTestRepo()

	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "tracuu:topic:3" {
			t.Errorf("unexpected key: %s", key)
		}
		return map[string]string{
			fieldTitle:      "Đa hình",
			fieldDefinition: "Polymorphism",
			fieldCategoryID: "2",
			fieldCreatedAt:  "1700000000000",
			fieldTagIDs:     "1,4",
		}, nil
	}

	top, err := repo.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top.Title() != "Đa hình" || top.CategoryID() != 2 {
		t.Errorf("unexpected topic: %+v", top)
	}
	if got := top.TagIDs(); len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("unexpected tag ids: %v", got)
	}
}

// --- GetAllTopics ---

func TestGetAllTopics_OrderedByID(t *testing.T) {
	repo, ms := newTestRepo()

	ms.smembersFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"9", "2"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		if len(keys) != 2 || keys[0] != "tracuu:topic:2" || keys[1] != "tracuu:topic:9" {
			t.Errorf("unexpected keys: %v", keys)
		}
		return []map[string]string{
			{fieldTitle: "A", fieldCategoryID: "1"},
			{fieldTitle: "B", fieldCategoryID: "1"},
		}, nil
	}

	topics, err := repo.GetAllTopics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 2 || topics[0].ID() != 2 || topics[1].ID() != 9 {
		t.Errorf("unexpected topics: %v", topics)
	}
}

func TestGetAllTopics_SkipsStaleIndexEntries(t *testing.T) {
	repo, ms := newTestRepo()

	ms.smembersFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"1", "2"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, _ []string) ([]map[string]string, error) {
		return []map[string]string{
			{fieldTitle: "A", fieldCategoryID: "1"},
			{},
		}, nil
	}

	topics, err := repo.GetAllTopics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 1 || topics[0].ID() != 1 {
		t.Errorf("unexpected topics: %v", topics)
	}
}

func TestGetAllTopics_Empty(t *testing.T) {
	repo, ms := newTestRepo()

	ms.smembersFn = func(_ context.Context, _ string) ([]string, error) { return nil, nil }

	topics, err := repo.GetAllTopics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("expected empty corpus, got %v", topics)
	}
}

// --- Update ---

func TestUpdate_NotFound(t *testing.T) {
	repo, ms := newTestRepo()

	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }

	err := repo.Update(context.Background(), testTopic(t).WithID(5))
	if !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

// --- Delete ---

func TestDelete_RemovesHashIndexAndTagLinks(t *testing.T) {
	repo, ms := newTestRepo()

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{fieldTitle: "A", fieldCategoryID: "1", fieldTagIDs: "3"}, nil
	}
	var deleted string
	ms.delFn = func(_ context.Context, key string) error {
		deleted = key
		return nil
	}
	sremKeys := map[string]bool{}
	ms.sremFn = func(_ context.Context, key string, _ ...string) error {
		sremKeys[key] = true
		return nil
	}

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "tracuu:topic:5" {
		t.Errorf("unexpected deleted key: %s", deleted)
	}
	if !sremKeys["tracuu:topics"] || !sremKeys["tracuu:tag:3:topics"] {
		t.Errorf("missing SREM calls: %v", sremKeys)
	}
}

// --- Tag links ---

func TestAttachTag_Idempotent(t *testing.T) {
	repo, ms := newTestRepo()

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{fieldTitle: "A", fieldCategoryID: "1", fieldTagIDs: "3"}, nil
	}
	ms.hsetFn = func(_ context.Context, _ string, _ map[string]string) error {
		t.Error("HSET should not be called for an existing link")
		return nil
	}

	if err := repo.AttachTag(context.Background(), 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttachTag_WritesBothDirections(t *testing.T) {
	repo, ms := newTestRepo()

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{fieldTitle: "A", fieldCategoryID: "1"}, nil
	}
	var wroteTags string
	ms.hsetFn = func(_ context.Context, _ string, fields map[string]string) error {
		wroteTags = fields[fieldTagIDs]
		return nil
	}
	var linked string
	ms.saddFn = func(_ context.Context, key string, _ ...string) error {
		linked = key
		return nil
	}

	if err := repo.AttachTag(context.Background(), 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wroteTags != "3" {
		t.Errorf("unexpected tag_ids field: %q", wroteTags)
	}
	if linked != "tracuu:tag:3:topics" {
		t.Errorf("unexpected reverse link key: %s", linked)
	}
}

func TestDetachTag_RemovesLink(t *testing.T) {
	repo, ms := newTestRepo()

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{fieldTitle: "A", fieldCategoryID: "1", fieldTagIDs: "3,4"}, nil
	}
	var wroteTags string
	ms.hsetFn = func(_ context.Context, _ string, fields map[string]string) error {
		wroteTags = fields[fieldTagIDs]
		return nil
	}

	if err := repo.DetachTag(context.Background(), 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wroteTags != "4" {
		t.Errorf("unexpected tag_ids field: %q", wroteTags)
	}
}

func TestTopicIDsByTag_Sorted(t *testing.T) {
	repo, ms := newTestRepo()

	ms.smembersFn = func(_ context.Context, key string) ([]string, error) {
		if key != "tracuu:tag:2:topics" {
			t.Errorf("unexpected key: %s", key)
		}
		return []string{"5", "1", "bogus"}, nil
	}

	ids, err := repo.TopicIDsByTag(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 5 {
		t.Errorf("unexpected ids: %v", ids)
	}
}
