package tag

import (
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
)

const (
	fieldName        = "name"
	fieldSlug        = "slug"
	fieldDescription = "description"
)

func buildHashFields(tg domtag.Tag) map[string]string {
	return map[string]string{
		fieldName:        tg.Name(),
		fieldSlug:        tg.Slug(),
		fieldDescription: tg.Description(),
	}
}

func parseHashFields(id int, m map[string]string) domtag.Tag {
	return domtag.Reconstruct(id, m[fieldName], m[fieldSlug], m[fieldDescription])
}
