package section

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hoclieu/tracuu/internal/db"
	"github.com/hoclieu/tracuu/internal/domain"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
)

// DefaultKeyPrefix namespaces all keys written by this repository.
const DefaultKeyPrefix = "tracuu:"

// store is the consumer interface for sections (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo persists sections as hashes, indexed globally and per topic.
type Repo struct {
	store  store
	prefix string
}

// New creates a section repository.
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

// Create assigns an id from the sequence and stores the section.
func (r *Repo) Create(ctx context.Context, s domsection.Section) (domsection.Section, error) {
	id, err := r.store.Incr(ctx, r.prefix+"seq:section")
	if err != nil {
		return domsection.Section{}, fmt.Errorf("next section id: %w", err)
	}
	s = s.WithID(int(id))

	if err := r.store.HSet(ctx, r.key(s.ID()), buildHashFields(s)); err != nil {
		return domsection.Section{}, fmt.Errorf("hset section %d: %w", s.ID(), err)
	}
	member := strconv.Itoa(s.ID())
	if err := r.store.SAdd(ctx, r.indexKey(), member); err != nil {
		return domsection.Section{}, fmt.Errorf("index section %d: %w", s.ID(), err)
	}
	if err := r.store.SAdd(ctx, r.topicIndexKey(s.TopicID()), member); err != nil {
		return domsection.Section{}, fmt.Errorf("index section %d by topic: %w", s.ID(), err)
	}
	return s, nil
}

// Get returns a section by id.
func (r *Repo) Get(ctx context.Context, id int) (domsection.Section, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domsection.Section{}, domain.ErrSectionNotFound
		}
		return domsection.Section{}, fmt.Errorf("hgetall section %d: %w", id, err)
	}
	if len(m) == 0 {
		return domsection.Section{}, domain.ErrSectionNotFound
	}
	return parseHashFields(id, m), nil
}

// GetAllSections returns every section, ordered by id.
func (r *Repo) GetAllSections(ctx context.Context) ([]domsection.Section, error) {
	ids, err := r.memberIDs(ctx, r.indexKey())
	if err != nil {
		return nil, err
	}
	return r.loadMany(ctx, ids)
}

// ListByTopic returns a topic's sections ordered by order_index, then id.
func (r *Repo) ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error) {
	ids, err := r.memberIDs(ctx, r.topicIndexKey(topicID))
	if err != nil {
		return nil, err
	}
	sections, err := r.loadMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].OrderIndex() < sections[j].OrderIndex()
	})
	return sections, nil
}

// Update overwrites an existing section, moving the topic index when reparented.
func (r *Repo) Update(ctx context.Context, s domsection.Section) error {
	prev, err := r.Get(ctx, s.ID())
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, r.key(s.ID()), buildHashFields(s)); err != nil {
		return fmt.Errorf("hset section %d: %w", s.ID(), err)
	}
	if prev.TopicID() != s.TopicID() {
		member := strconv.Itoa(s.ID())
		if err := r.store.SRem(ctx, r.topicIndexKey(prev.TopicID()), member); err != nil {
			return fmt.Errorf("unindex section %d by topic: %w", s.ID(), err)
		}
		if err := r.store.SAdd(ctx, r.topicIndexKey(s.TopicID()), member); err != nil {
			return fmt.Errorf("index section %d by topic: %w", s.ID(), err)
		}
	}
	return nil
}

// Delete removes a section and its index entries.
func (r *Repo) Delete(ctx context.Context, id int) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("del section %d: %w", id, err)
	}
	member := strconv.Itoa(id)
	if err := r.store.SRem(ctx, r.indexKey(), member); err != nil {
		return fmt.Errorf("unindex section %d: %w", id, err)
	}
	if err := r.store.SRem(ctx, r.topicIndexKey(s.TopicID()), member); err != nil {
		return fmt.Errorf("unindex section %d by topic: %w", id, err)
	}
	return nil
}

// DeleteByTopic removes every section of a topic. Used by the topic cascade.
func (r *Repo) DeleteByTopic(ctx context.Context, topicID int) error {
	ids, err := r.memberIDs(ctx, r.topicIndexKey(topicID))
	if err != nil {
		return err
	}
	members := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := r.store.Del(ctx, r.key(id)); err != nil {
			return fmt.Errorf("del section %d: %w", id, err)
		}
		members = append(members, strconv.Itoa(id))
	}
	if len(members) > 0 {
		if err := r.store.SRem(ctx, r.indexKey(), members...); err != nil {
			return fmt.Errorf("unindex sections of topic %d: %w", topicID, err)
		}
	}
	if err := r.store.Del(ctx, r.topicIndexKey(topicID)); err != nil {
		return fmt.Errorf("del topic %d section index: %w", topicID, err)
	}
	return nil
}

func (r *Repo) loadMany(ctx context.Context, ids []int) ([]domsection.Section, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall sections: %w", err)
	}
	sections := make([]domsection.Section, 0, len(ids))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		sections = append(sections, parseHashFields(ids[i], m))
	}
	return sections, nil
}

func (r *Repo) memberIDs(ctx context.Context, key string) ([]int, error) {
	members, err := r.store.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		if id, err := strconv.Atoi(m); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *Repo) key(id int) string { return r.prefix + "section:" + strconv.Itoa(id) }
func (r *Repo) indexKey() string  { return r.prefix + "sections" }
func (r *Repo) topicIndexKey(topicID int) string {
	return r.prefix + "topic:" + strconv.Itoa(topicID) + ":sections"
}
