package tag

import (
	"regexp"
	"strings"

	"github.com/hoclieu/tracuu/internal/domain"
	"github.com/hoclieu/tracuu/internal/domain/category"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Tag labels topics for filtering (immutable value object).
type Tag struct {
	id          int
	name        string
	slug        string
	description string
}

// New validates and creates a Tag. The id is assigned by storage.
// Slug is optional; when empty it is derived from the name with
// diacritics folded.
func New(name, slug, description string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, domain.NewValidationError("name", "is required")
	}
	if slug == "" {
		slug = category.Slugify(name)
	}
	if !slugRegex.MatchString(slug) {
		return Tag{}, domain.NewValidationError("slug", "must be lowercase alphanumerics and hyphens")
	}
	return Tag{name: name, slug: slug, description: description}, nil
}

// Reconstruct creates a Tag without validation (storage hydration).
func Reconstruct(id int, name, slug, description string) Tag {
	return Tag{id: id, name: name, slug: slug, description: description}
}

// WithID returns a copy with the storage-assigned id.
func (t Tag) WithID(id int) Tag {
	t.id = id
	return t
}

// ID returns the tag identifier.
func (t Tag) ID() int { return t.id }

// Name returns the tag name.
func (t Tag) Name() string { return t.name }

// Slug returns the URL slug.
func (t Tag) Slug() string { return t.slug }

// Description returns the tag description, empty when absent.
func (t Tag) Description() string { return t.description }
