package category

import (
	"regexp"
	"strings"

	"github.com/hoclieu/tracuu/internal/domain"
	"github.com/hoclieu/tracuu/internal/textnorm"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category groups topics by knowledge area (immutable value object).
type Category struct {
	id   int
	name string
	slug string
}

// New validates and creates a Category. The id is assigned by storage.
// Slug is optional; when empty a lowercase-hyphenated form of the name is derived.
func New(name, slug string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, domain.NewValidationError("name", "is required")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugRegex.MatchString(slug) {
		return Category{}, domain.NewValidationError("slug", "must be lowercase alphanumerics and hyphens")
	}
	return Category{name: name, slug: slug}, nil
}

// Reconstruct creates a Category without validation (storage hydration).
func Reconstruct(id int, name, slug string) Category {
	return Category{id: id, name: name, slug: slug}
}

// WithID returns a copy with the storage-assigned id.
func (c Category) WithID(id int) Category {
	c.id = id
	return c
}

// ID returns the category identifier.
func (c Category) ID() int { return c.id }

// Name returns the category name.
func (c Category) Name() string { return c.name }

// Slug returns the URL slug.
func (c Category) Slug() string { return c.slug }

// Slugify derives a URL slug from a display name.
// Diacritics are folded first, so "Lập trình" yields "lap-trinh";
// remaining non-alphanumeric runs collapse into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range textnorm.Normalize(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
