package tracuu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoclieu/tracuu/internal/db"
	dbRedis "github.com/hoclieu/tracuu/internal/db/redis"
	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	"github.com/hoclieu/tracuu/internal/domain/search/result"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
	categoryrepo "github.com/hoclieu/tracuu/internal/repository/category"
	sectionrepo "github.com/hoclieu/tracuu/internal/repository/section"
	tagrepo "github.com/hoclieu/tracuu/internal/repository/tag"
	topicrepo "github.com/hoclieu/tracuu/internal/repository/topic"
	categoryuc "github.com/hoclieu/tracuu/internal/usecase/category"
	healthuc "github.com/hoclieu/tracuu/internal/usecase/health"
	relateduc "github.com/hoclieu/tracuu/internal/usecase/related"
	searchuc "github.com/hoclieu/tracuu/internal/usecase/search"
	sectionuc "github.com/hoclieu/tracuu/internal/usecase/section"
	taguc "github.com/hoclieu/tracuu/internal/usecase/tag"
	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type searchUseCase interface {
	Search(ctx context.Context, query string, limit int, tagIDs []int) (result.Response, error)
}

type relatedUseCase interface {
	FindRelated(ctx context.Context, topicID, topN int) ([]result.RelatedTopic, error)
}

type topicUseCase interface {
	Create(ctx context.Context, title, shortDefinition string, categoryID int) (domtopic.Topic, error)
	Get(ctx context.Context, id int) (topicuc.Detail, error)
	List(ctx context.Context, skip, limit int) ([]domtopic.Topic, error)
	Update(ctx context.Context, id int, params topicuc.UpdateParams) (domtopic.Topic, error)
	Delete(ctx context.Context, id int) error
	AttachTag(ctx context.Context, topicID, tagID int) error
	DetachTag(ctx context.Context, topicID, tagID int) error
}

type sectionUseCase interface {
	Create(ctx context.Context, params sectionuc.CreateParams) (domsection.Section, error)
	Get(ctx context.Context, id int) (domsection.Section, error)
	ListByTopic(ctx context.Context, topicID int) ([]domsection.Section, error)
	Update(ctx context.Context, id int, params sectionuc.UpdateParams) (domsection.Section, error)
	Delete(ctx context.Context, id int) error
}

type categoryUseCase interface {
	Create(ctx context.Context, name, slug string) (domcategory.Category, error)
	Get(ctx context.Context, id int) (domcategory.Category, error)
	List(ctx context.Context) ([]categoryuc.Summary, error)
	Update(ctx context.Context, id int, name, slug string) (domcategory.Category, error)
	Delete(ctx context.Context, id int) error
}

type tagUseCase interface {
	Create(ctx context.Context, name, slug, description string) (domtag.Tag, error)
	Get(ctx context.Context, id int) (domtag.Tag, error)
	List(ctx context.Context) ([]domtag.Tag, error)
	Update(ctx context.Context, id int, name, slug, description string) (domtag.Tag, error)
	Delete(ctx context.Context, id int) error
	TopicIDs(ctx context.Context, id int) ([]int, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the tracuu SDK entry point.
type Client struct {
	store       db.Store
	searchSvc   searchUseCase
	relatedSvc  relatedUseCase
	topicSvc    topicUseCase
	sectionSvc  sectionUseCase
	categorySvc categoryUseCase
	tagSvc      tagUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New creates a tracuu Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: topicrepo.DefaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("tracuu: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("tracuu: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("tracuu: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	topicRepo := topicrepo.New(store).WithPrefix(cfg.keyPrefix)
	sectionRepo := sectionrepo.New(store).WithPrefix(cfg.keyPrefix)
	categoryRepo := categoryrepo.New(store).WithPrefix(cfg.keyPrefix)
	tagRepo := tagrepo.New(store).WithPrefix(cfg.keyPrefix)

	return &Client{
		store:       store,
		searchSvc:   searchuc.New(topicRepo, sectionRepo, categoryRepo),
		relatedSvc:  relateduc.New(topicRepo),
		topicSvc:    topicuc.NewService(topicRepo, sectionRepo, categoryRepo, tagRepo),
		sectionSvc:  sectionuc.NewService(sectionRepo, topicRepo),
		categorySvc: categoryuc.NewService(categoryRepo, topicRepo),
		tagSvc:      taguc.NewService(tagRepo, topicRepo),
		healthSvc:   healthuc.New(store),
		obs:         obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Healthy reports whether the backing database answers.
func (c *Client) Healthy(ctx context.Context) bool {
	report := c.healthSvc.Check(ctx)
	return report.Status == healthuc.Healthy
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, obs: c.obs}
}

// Topics returns the topic management service.
func (c *Client) Topics() *TopicService {
	return &TopicService{svc: c.topicSvc, relatedSvc: c.relatedSvc, obs: c.obs}
}

// Sections returns the section management service.
func (c *Client) Sections() *SectionService {
	return &SectionService{svc: c.sectionSvc, obs: c.obs}
}

// Categories returns the category management service.
func (c *Client) Categories() *CategoryService {
	return &CategoryService{svc: c.categorySvc, obs: c.obs}
}

// Tags returns the tag management service.
func (c *Client) Tags() *TagService {
	return &TagService{svc: c.tagSvc, obs: c.obs}
}
