package tag

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hoclieu/tracuu/internal/db"
	"github.com/hoclieu/tracuu/internal/domain"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
)

// DefaultKeyPrefix namespaces all keys written by this repository.
const DefaultKeyPrefix = "tracuu:"

// store is the consumer interface for tags (ISP).
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

// Repo persists tags as hashes with a set-based key index.
type Repo struct {
	store  store
	prefix string
}

// New creates a tag repository.
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

// Create assigns an id from the sequence and stores the tag.
func (r *Repo) Create(ctx context.Context, tg domtag.Tag) (domtag.Tag, error) {
	id, err := r.store.Incr(ctx, r.prefix+"seq:tag")
	if err != nil {
		return domtag.Tag{}, fmt.Errorf("next tag id: %w", err)
	}
	tg = tg.WithID(int(id))

	if err := r.store.HSet(ctx, r.key(tg.ID()), buildHashFields(tg)); err != nil {
		return domtag.Tag{}, fmt.Errorf("hset tag %d: %w", tg.ID(), err)
	}
	if err := r.store.SAdd(ctx, r.indexKey(), strconv.Itoa(tg.ID())); err != nil {
		return domtag.Tag{}, fmt.Errorf("index tag %d: %w", tg.ID(), err)
	}
	return tg, nil
}

// Get returns a tag by id.
func (r *Repo) Get(ctx context.Context, id int) (domtag.Tag, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domtag.Tag{}, domain.ErrTagNotFound
		}
		return domtag.Tag{}, fmt.Errorf("hgetall tag %d: %w", id, err)
	}
	if len(m) == 0 {
		return domtag.Tag{}, domain.ErrTagNotFound
	}
	return parseHashFields(id, m), nil
}

// GetAllTags returns every tag, ordered by id.
func (r *Repo) GetAllTags(ctx context.Context) ([]domtag.Tag, error) {
	members, err := r.store.SMembers(ctx, r.indexKey())
	if err != nil {
		return nil, fmt.Errorf("smembers tag index: %w", err)
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		if id, err := strconv.Atoi(m); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall tags: %w", err)
	}
	tags := make([]domtag.Tag, 0, len(ids))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		tags = append(tags, parseHashFields(ids[i], m))
	}
	return tags, nil
}

// Exists reports whether a tag is stored.
func (r *Repo) Exists(ctx context.Context, id int) (bool, error) {
	exists, err := r.store.Exists(ctx, r.key(id))
	if err != nil {
		return false, fmt.Errorf("check tag %d: %w", id, err)
	}
	return exists, nil
}

// Update overwrites an existing tag in place.
func (r *Repo) Update(ctx context.Context, tg domtag.Tag) error {
	exists, err := r.store.Exists(ctx, r.key(tg.ID()))
	if err != nil {
		return fmt.Errorf("check tag %d: %w", tg.ID(), err)
	}
	if !exists {
		return domain.ErrTagNotFound
	}
	if err := r.store.HSet(ctx, r.key(tg.ID()), buildHashFields(tg)); err != nil {
		return fmt.Errorf("hset tag %d: %w", tg.ID(), err)
	}
	return nil
}

// Delete removes a tag, its index entry, and its topic link set.
// Topic-side links are detached by the caller before this runs.
func (r *Repo) Delete(ctx context.Context, id int) error {
	exists, err := r.store.Exists(ctx, r.key(id))
	if err != nil {
		return fmt.Errorf("check tag %d: %w", id, err)
	}
	if !exists {
		return domain.ErrTagNotFound
	}
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("del tag %d: %w", id, err)
	}
	if err := r.store.Del(ctx, r.topicsKey(id)); err != nil {
		return fmt.Errorf("del tag %d topic links: %w", id, err)
	}
	if err := r.store.SRem(ctx, r.indexKey(), strconv.Itoa(id)); err != nil {
		return fmt.Errorf("unindex tag %d: %w", id, err)
	}
	return nil
}

func (r *Repo) key(id int) string       { return r.prefix + "tag:" + strconv.Itoa(id) }
func (r *Repo) indexKey() string        { return r.prefix + "tags" }
func (r *Repo) topicsKey(id int) string { return r.prefix + "tag:" + strconv.Itoa(id) + ":topics" }
