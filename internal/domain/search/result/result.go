// Package result holds scored search hits per entity type.
package result

import (
	"github.com/hoclieu/tracuu/internal/domain/category"
	"github.com/hoclieu/tracuu/internal/domain/section"
	"github.com/hoclieu/tracuu/internal/domain/topic"
)

// Topic is a scored topic hit.
type Topic struct {
	topic topic.Topic
	score float64
}

// NewTopic creates a scored topic result.
func NewTopic(t topic.Topic, score float64) Topic {
	return Topic{topic: t, score: score}
}

// Record returns the matched topic.
func (r *Topic) Record() topic.Topic { return r.topic }

// Score returns the relevance score.
func (r *Topic) Score() float64 { return r.score }

// Section is a scored section hit with a content preview.
type Section struct {
	section section.Section
	preview string
	score   float64
}

// NewSection creates a scored section result.
func NewSection(s section.Section, preview string, score float64) Section {
	return Section{section: s, preview: preview, score: score}
}

// Record returns the matched section.
func (r *Section) Record() section.Section { return r.section }

// Preview returns the truncated content preview.
func (r *Section) Preview() string { return r.preview }

// Score returns the relevance score.
func (r *Section) Score() float64 { return r.score }

// Category is a scored category hit with its topic count.
type Category struct {
	category   category.Category
	topicCount int
	score      float64
}

// NewCategory creates a scored category result.
func NewCategory(c category.Category, topicCount int, score float64) Category {
	return Category{category: c, topicCount: topicCount, score: score}
}

// Record returns the matched category.
func (r *Category) Record() category.Category { return r.category }

// TopicCount returns the number of topics in the category.
func (r *Category) TopicCount() int { return r.topicCount }

// Score returns the relevance score.
func (r *Category) Score() float64 { return r.score }

// Response is the full search outcome across the three entity types.
type Response struct {
	Query      string
	Topics     []Topic
	Sections   []Section
	Categories []Category
}

// TotalResults returns the sum of the three post-truncation list lengths.
func (r *Response) TotalResults() int {
	return len(r.Topics) + len(r.Sections) + len(r.Categories)
}

// RelatedTopic is one recommendation with its blended score.
type RelatedTopic struct {
	topic topic.Topic
	score float64
}

// NewRelatedTopic creates a recommendation entry.
func NewRelatedTopic(t topic.Topic, score float64) RelatedTopic {
	return RelatedTopic{topic: t, score: score}
}

// Record returns the recommended topic.
func (r *RelatedTopic) Record() topic.Topic { return r.topic }

// Score returns the blended relevance score, rounded to 4 decimals.
func (r *RelatedTopic) Score() float64 { return r.score }
