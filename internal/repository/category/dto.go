package category

import (
	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
)

const (
	fieldName = "name"
	fieldSlug = "slug"
)

func buildHashFields(c domcategory.Category) map[string]string {
	return map[string]string{
		fieldName: c.Name(),
		fieldSlug: c.Slug(),
	}
}

func parseHashFields(id int, m map[string]string) domcategory.Category {
	return domcategory.Reconstruct(id, m[fieldName], m[fieldSlug])
}
