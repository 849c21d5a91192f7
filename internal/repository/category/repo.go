package category

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hoclieu/tracuu/internal/db"
	"github.com/hoclieu/tracuu/internal/domain"
	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
)

// DefaultKeyPrefix namespaces all keys written by this repository.
const DefaultKeyPrefix = "tracuu:"

// store is the consumer interface for categories (ISP).
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

// Repo persists categories as hashes with a set-based key index.
type Repo struct {
	store  store
	prefix string
}

// New creates a category repository.
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

// Create assigns an id from the sequence and stores the category.
func (r *Repo) Create(ctx context.Context, c domcategory.Category) (domcategory.Category, error) {
	id, err := r.store.Incr(ctx, r.prefix+"seq:category")
	if err != nil {
		return domcategory.Category{}, fmt.Errorf("next category id: %w", err)
	}
	c = c.WithID(int(id))

	if err := r.store.HSet(ctx, r.key(c.ID()), buildHashFields(c)); err != nil {
		return domcategory.Category{}, fmt.Errorf("hset category %d: %w", c.ID(), err)
	}
	if err := r.store.SAdd(ctx, r.indexKey(), strconv.Itoa(c.ID())); err != nil {
		return domcategory.Category{}, fmt.Errorf("index category %d: %w", c.ID(), err)
	}
	return c, nil
}

// Get returns a category by id.
func (r *Repo) Get(ctx context.Context, id int) (domcategory.Category, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcategory.Category{}, domain.ErrCategoryNotFound
		}
		return domcategory.Category{}, fmt.Errorf("hgetall category %d: %w", id, err)
	}
	if len(m) == 0 {
		return domcategory.Category{}, domain.ErrCategoryNotFound
	}
	return parseHashFields(id, m), nil
}

// GetAllCategories returns every category, ordered by id.
func (r *Repo) GetAllCategories(ctx context.Context) ([]domcategory.Category, error) {
	members, err := r.store.SMembers(ctx, r.indexKey())
	if err != nil {
		return nil, fmt.Errorf("smembers category index: %w", err)
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
		return nil, fmt.Errorf("hgetall categories: %w", err)
	}
	categories := make([]domcategory.Category, 0, len(ids))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		categories = append(categories, parseHashFields(ids[i], m))
	}
	return categories, nil
}

// Exists reports whether a category is stored.
func (r *Repo) Exists(ctx context.Context, id int) (bool, error) {
	exists, err := r.store.Exists(ctx, r.key(id))
	if err != nil {
		return false, fmt.Errorf("check category %d: %w", id, err)
	}
	return exists, nil
}

// Update overwrites an existing category in place.
func (r *Repo) Update(ctx context.Context, c domcategory.Category) error {
	exists, err := r.store.Exists(ctx, r.key(c.ID()))
	if err != nil {
		return fmt.Errorf("check category %d: %w", c.ID(), err)
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	if err := r.store.HSet(ctx, r.key(c.ID()), buildHashFields(c)); err != nil {
		return fmt.Errorf("hset category %d: %w", c.ID(), err)
	}
	return nil
}

// Delete removes a category and its index entry.
func (r *Repo) Delete(ctx context.Context, id int) error {
	exists, err := r.store.Exists(ctx, r.key(id))
	if err != nil {
		return fmt.Errorf("check category %d: %w", id, err)
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("del category %d: %w", id, err)
	}
	if err := r.store.SRem(ctx, r.indexKey(), strconv.Itoa(id)); err != nil {
		return fmt.Errorf("unindex category %d: %w", id, err)
	}
	return nil
}

func (r *Repo) key(id int) string { return r.prefix + "category:" + strconv.Itoa(id) }
func (r *Repo) indexKey() string  { return r.prefix + "categories" }
