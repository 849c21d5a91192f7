package topic

import (
	"strconv"
	"strings"

	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
)

const (
	fieldTitle      = "title"
	fieldDefinition = "short_definition"
	fieldCategoryID = "category_id"
	fieldCreatedAt  = "created_at"
	fieldTagIDs     = "tag_ids"
)

func buildHashFields(t domtopic.Topic) map[string]string {
	return map[string]string{
		fieldTitle:      t.Title(),
		fieldDefinition: t.ShortDefinition(),
		fieldCategoryID: strconv.Itoa(t.CategoryID()),
		fieldCreatedAt:  strconv.FormatInt(t.CreatedAt(), 10),
		fieldTagIDs:     joinIDs(t.TagIDs()),
	}
}

func parseHashFields(id int, m map[string]string) domtopic.Topic {
	categoryID, _ := strconv.Atoi(m[fieldCategoryID])
	createdAt, _ := strconv.ParseInt(m[fieldCreatedAt], 10, 64)
	return domtopic.Reconstruct(
		id,
		m[fieldTitle],
		m[fieldDefinition],
		categoryID,
		createdAt,
		splitIDs(m[fieldTagIDs]),
	)
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func splitIDs(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.Atoi(p); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
