package section

import (
	"strconv"

	domsection "github.com/hoclieu/tracuu/internal/domain/section"
)

const (
	fieldTopicID     = "topic_id"
	fieldOrderIndex  = "order_index"
	fieldHeading     = "heading"
	fieldContent     = "content"
	fieldImageURL    = "image_url"
	fieldCodeSnippet = "code_snippet"
	fieldLanguage    = "language"
)

func buildHashFields(s domsection.Section) map[string]string {
	return map[string]string{
		fieldTopicID:     strconv.Itoa(s.TopicID()),
		fieldOrderIndex:  strconv.Itoa(s.OrderIndex()),
		fieldHeading:     s.Heading(),
		fieldContent:     s.Content(),
		fieldImageURL:    s.ImageURL(),
		fieldCodeSnippet: s.CodeSnippet(),
		fieldLanguage:    s.Language(),
	}
}

func parseHashFields(id int, m map[string]string) domsection.Section {
	topicID, _ := strconv.Atoi(m[fieldTopicID])
	orderIndex, _ := strconv.Atoi(m[fieldOrderIndex])
	return domsection.Reconstruct(
		id,
		topicID,
		orderIndex,
		m[fieldHeading],
		m[fieldContent],
		m[fieldImageURL],
		m[fieldCodeSnippet],
		m[fieldLanguage],
	)
}
