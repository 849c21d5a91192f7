package tracuu

import (
	"time"

	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	"github.com/hoclieu/tracuu/internal/domain/search/result"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

// Topic is a knowledge base entry.
type Topic struct {
	ID              int
	Title           string
	ShortDefinition string
	CategoryID      int
	CreatedAt       time.Time
	TagIDs          []int
}

// Section is a content block of a topic.
type Section struct {
	ID          int
	TopicID     int
	OrderIndex  int
	Heading     string
	Content     string
	ImageURL    string
	CodeSnippet string
	Language    string
}

// TopicDetail is a topic with its ordered sections.
type TopicDetail struct {
	Topic
	Sections []Section
}

// Category groups topics by subject area.
type Category struct {
	ID   int
	Name string
	Slug string
}

// CategorySummary is a category with its topic count.
type CategorySummary struct {
	Category
	TopicCount int
}

// Tag labels topics for filtering.
type Tag struct {
	ID          int
	Name        string
	Slug        string
	Description string
}

// ScoredTopic is a topic with a relevance or similarity score.
type ScoredTopic struct {
	Topic
	Score float64
}

// ScoredSection is a section search hit with a content preview.
type ScoredSection struct {
	ID      int
	TopicID int
	Heading string
	Preview string
	Score   float64
}

// ScoredCategory is a category search hit.
type ScoredCategory struct {
	ID         int
	Name       string
	Slug       string
	TopicCount int
	Score      float64
}

// SearchResult is the full search outcome.
type SearchResult struct {
	Query      string
	Topics     []ScoredTopic
	Sections   []ScoredSection
	Categories []ScoredCategory
}

func topicFromDomain(t domtopic.Topic) Topic {
	tagIDs := t.TagIDs()
	if tagIDs == nil {
		tagIDs = []int{}
	}
	return Topic{
		ID:              t.ID(),
		Title:           t.Title(),
		ShortDefinition: t.ShortDefinition(),
		CategoryID:      t.CategoryID(),
		CreatedAt:       time.UnixMilli(t.CreatedAt()).UTC(),
		TagIDs:          tagIDs,
	}
}

func sectionFromDomain(s domsection.Section) Section {
	return Section{
		ID:          s.ID(),
		TopicID:     s.TopicID(),
		OrderIndex:  s.OrderIndex(),
		Heading:     s.Heading(),
		Content:     s.Content(),
		ImageURL:    s.ImageURL(),
		CodeSnippet: s.CodeSnippet(),
		Language:    s.Language(),
	}
}

func categoryFromDomain(c domcategory.Category) Category {
	return Category{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
}

func tagFromDomain(t domtag.Tag) Tag {
	return Tag{
		ID:          t.ID(),
		Name:        t.Name(),
		Slug:        t.Slug(),
		Description: t.Description(),
	}
}

func searchFromDomain(resp result.Response) SearchResult {
	out := SearchResult{
		Query:      resp.Query,
		Topics:     make([]ScoredTopic, len(resp.Topics)),
		Sections:   make([]ScoredSection, len(resp.Sections)),
		Categories: make([]ScoredCategory, len(resp.Categories)),
	}
	for i := range resp.Topics {
		out.Topics[i] = ScoredTopic{
			Topic: topicFromDomain(resp.Topics[i].Record()),
			Score: resp.Topics[i].Score(),
		}
	}
	for i := range resp.Sections {
		rec := resp.Sections[i].Record()
		out.Sections[i] = ScoredSection{
			ID:      rec.ID(),
			TopicID: rec.TopicID(),
			Heading: rec.Heading(),
			Preview: resp.Sections[i].Preview(),
			Score:   resp.Sections[i].Score(),
		}
	}
	for i := range resp.Categories {
		rec := resp.Categories[i].Record()
		out.Categories[i] = ScoredCategory{
			ID:         rec.ID(),
			Name:       rec.Name(),
			Slug:       rec.Slug(),
			TopicCount: resp.Categories[i].TopicCount(),
			Score:      resp.Categories[i].Score(),
		}
	}
	return out
}

func relatedFromDomain(items []result.RelatedTopic) []ScoredTopic {
	out := make([]ScoredTopic, len(items))
	for i := range items {
		out[i] = ScoredTopic{
			Topic: topicFromDomain(items[i].Record()),
			Score: items[i].Score(),
		}
	}
	return out
}
