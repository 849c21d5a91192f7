package topic

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hoclieu/tracuu/internal/domain"
)

// Field limits for topic content.
const (
	MinTitleLen      = 3
	MaxTitleLen      = 200
	MaxDefinitionLen = 500
)

// Topic is a knowledge-base entry (immutable value object).
type Topic struct {
	id              int
	title           string
	shortDefinition string
	categoryID      int
	createdAt       int64
	tagIDs          []int
}

// New validates and creates a Topic. The id is assigned by storage.
// Title: 3-200 chars. ShortDefinition: optional, max 500 chars.
func New(title, shortDefinition string, categoryID int) (Topic, error) {
	title = strings.TrimSpace(title)
	if n := utf8.RuneCountInString(title); n < MinTitleLen || n > MaxTitleLen {
		return Topic{}, domain.NewValidationError("title", "must be 3-200 characters")
	}
	if utf8.RuneCountInString(shortDefinition) > MaxDefinitionLen {
		return Topic{}, domain.NewValidationError("short_definition", "must be at most 500 characters")
	}
	if categoryID <= 0 {
		return Topic{}, domain.NewValidationError("category_id", "is required")
	}

	return Topic{
		title:           title,
		shortDefinition: shortDefinition,
		categoryID:      categoryID,
		createdAt:       time.Now().UnixMilli(),
	}, nil
}

// Reconstruct creates a Topic without validation (storage hydration).
func Reconstruct(id int, title, shortDefinition string, categoryID int, createdAt int64, tagIDs []int) Topic {
	return Topic{
		id:              id,
		title:           title,
		shortDefinition: shortDefinition,
		categoryID:      categoryID,
		createdAt:       createdAt,
		tagIDs:          tagIDs,
	}
}

// WithID returns a copy with the storage-assigned id.
func (t Topic) WithID(id int) Topic {
	t.id = id
	return t
}

// ID returns the topic identifier.
func (t Topic) ID() int { return t.id }

// Title returns the topic title.
func (t Topic) Title() string { return t.title }

// ShortDefinition returns the short definition, empty when absent.
func (t Topic) ShortDefinition() string { return t.shortDefinition }

// CategoryID returns the owning category id.
func (t Topic) CategoryID() int { return t.categoryID }

// CreatedAt returns the creation timestamp in unix milliseconds.
func (t Topic) CreatedAt() int64 { return t.createdAt }

// TagIDs returns the attached tag ids.
func (t Topic) TagIDs() []int { return t.tagIDs }

// HasAnyTag reports whether the topic carries at least one of the given tags.
func (t Topic) HasAnyTag(tagIDs []int) bool {
	for _, want := range tagIDs {
		for _, have := range t.tagIDs {
			if have == want {
				return true
			}
		}
	}
	return false
}
