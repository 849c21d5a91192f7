package topic

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hoclieu/tracuu/internal/db"
	"github.com/hoclieu/tracuu/internal/domain"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

// DefaultKeyPrefix namespaces all keys written by this repository.
const DefaultKeyPrefix = "tracuu:"

// store is the consumer interface for topics (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo persists topics as hashes with a set-based key index.
type Repo struct {
	store  store
	prefix string
}

// New creates a topic repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithPrefix overrides the key prefix.
func (r *Repo) WithPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// Create assigns an id from the sequence and stores the topic.
func (r *Repo) Create(ctx context.Context, t domtopic.Topic) (domtopic.Topic, error) {
	id, err := r.store.Incr(ctx, r.prefix+"seq:topic")
	if err != nil {
		return domtopic.Topic{}, fmt.Errorf("next topic id: %w", err)
	}
	t = t.WithID(int(id))

	if err := r.store.HSet(ctx, r.key(t.ID()), buildHashFields(t)); err != nil {
		return domtopic.Topic{}, fmt.Errorf("hset topic %d: %w", t.ID(), err)
	}
	if err := r.store.SAdd(ctx, r.indexKey(), strconv.Itoa(t.ID())); err != nil {
		return domtopic.Topic{}, fmt.Errorf("index topic %d: %w", t.ID(), err)
	}
	return t, nil
}

// Get returns a topic by id.
func (r *Repo) Get(ctx context.Context, id int) (domtopic.Topic, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domtopic.Topic{}, domain.ErrTopicNotFound
		}
		return domtopic.Topic{}, fmt.Errorf("hgetall topic %d: %w", id, err)
	}
	if len(m) == 0 {
		return domtopic.Topic{}, domain.ErrTopicNotFound
	}
	return parseHashFields(id, m), nil
}

// GetAllTopics returns the whole topic corpus, ordered by id.
// Sections are never loaded here; ranking only needs titles and definitions.
func (r *Repo) GetAllTopics(ctx context.Context) ([]domtopic.Topic, error) {
	ids, err := r.indexIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall topics: %w", err)
	}

	topics := make([]domtopic.Topic, 0, len(ids))
	for i, m := range maps {
		if len(m) == 0 {
			continue // index entry for a deleted hash
		}
		topics = append(topics, parseHashFields(ids[i], m))
	}
	return topics, nil
}

// Exists reports whether a topic is stored.
func (r *Repo) Exists(ctx context.Context, id int) (bool, error) {
	exists, err := r.store.Exists(ctx, r.key(id))
	if err != nil {
		return false, fmt.Errorf("check topic %d: %w", id, err)
	}
	return exists, nil
}

// Update overwrites an existing topic in place.
func (r *Repo) Update(ctx context.Context, t domtopic.Topic) error {
	exists, err := r.store.Exists(ctx, r.key(t.ID()))
	if err != nil {
		return fmt.Errorf("check topic %d: %w", t.ID(), err)
	}
	if !exists {
		return domain.ErrTopicNotFound
	}
	if err := r.store.HSet(ctx, r.key(t.ID()), buildHashFields(t)); err != nil {
		return fmt.Errorf("hset topic %d: %w", t.ID(), err)
	}
	return nil
}

// Delete removes a topic, its index entry, and its tag reverse links.
func (r *Repo) Delete(ctx context.Context, id int) error {
	t, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for _, tagID := range t.TagIDs() {
		if err := r.store.SRem(ctx, r.tagTopicsKey(tagID), strconv.Itoa(id)); err != nil {
			return fmt.Errorf("unlink tag %d: %w", tagID, err)
		}
	}
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("del topic %d: %w", id, err)
	}
	if err := r.store.SRem(ctx, r.indexKey(), strconv.Itoa(id)); err != nil {
		return fmt.Errorf("unindex topic %d: %w", id, err)
	}
	return nil
}

// AttachTag links a tag to a topic in both directions.
func (r *Repo) AttachTag(ctx context.Context, topicID, tagID int) error {
	t, err := r.Get(ctx, topicID)
	if err != nil {
		return err
	}
	for _, existing := range t.TagIDs() {
		if existing == tagID {
			return nil // already linked
		}
	}
	updated := domtopic.Reconstruct(
		t.ID(), t.Title(), t.ShortDefinition(), t.CategoryID(), t.CreatedAt(),
		append(t.TagIDs(), tagID),
	)
	if err := r.store.HSet(ctx, r.key(topicID), buildHashFields(updated)); err != nil {
		return fmt.Errorf("hset topic %d: %w", topicID, err)
	}
	if err := r.store.SAdd(ctx, r.tagTopicsKey(tagID), strconv.Itoa(topicID)); err != nil {
		return fmt.Errorf("link tag %d: %w", tagID, err)
	}
	return nil
}

// DetachTag removes a tag link in both directions.
func (r *Repo) DetachTag(ctx context.Context, topicID, tagID int) error {
	t, err := r.Get(ctx, topicID)
	if err != nil {
		return err
	}
	remaining := make([]int, 0, len(t.TagIDs()))
	for _, existing := range t.TagIDs() {
		if existing != tagID {
			remaining = append(remaining, existing)
		}
	}
	updated := domtopic.Reconstruct(
		t.ID(), t.Title(), t.ShortDefinition(), t.CategoryID(), t.CreatedAt(), remaining,
	)
	if err := r.store.HSet(ctx, r.key(topicID), buildHashFields(updated)); err != nil {
		return fmt.Errorf("hset topic %d: %w", topicID, err)
	}
	if err := r.store.SRem(ctx, r.tagTopicsKey(tagID), strconv.Itoa(topicID)); err != nil {
		return fmt.Errorf("unlink tag %d: %w", tagID, err)
	}
	return nil
}

// TopicIDsByTag returns the ids of topics carrying a tag, ordered ascending.
func (r *Repo) TopicIDsByTag(ctx context.Context, tagID int) ([]int, error) {
	members, err := r.store.SMembers(ctx, r.tagTopicsKey(tagID))
	if err != nil {
		return nil, fmt.Errorf("smembers tag %d topics: %w", tagID, err)
	}
	return parseIDs(members), nil
}

func (r *Repo) indexIDs(ctx context.Context) ([]int, error) {
	members, err := r.store.SMembers(ctx, r.indexKey())
	if err != nil {
		return nil, fmt.Errorf("smembers topic index: %w", err)
	}
	return parseIDs(members), nil
}

func (r *Repo) key(id int) string       { return r.prefix + "topic:" + strconv.Itoa(id) }
func (r *Repo) indexKey() string        { return r.prefix + "topics" }
func (r *Repo) tagTopicsKey(id int) string { return r.prefix + "tag:" + strconv.Itoa(id) + ":topics" }

// parseIDs converts set members to sorted ints, skipping malformed entries.
func parseIDs(members []string) []int {
	ids := make([]int, 0, len(members))
	for _, m := range members {
		if id, err := strconv.Atoi(m); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
