package section

import (
	"strings"
	"unicode/utf8"

	"github.com/hoclieu/tracuu/internal/domain"
)

// MaxContentLen bounds section body size.
const MaxContentLen = 10000

// supportedLanguages are the code snippet languages accepted by New.
var supportedLanguages = map[string]bool{
	"python": true, "java": true, "csharp": true, "cpp": true,
	"javascript": true, "typescript": true, "go": true, "rust": true,
	"php": true, "ruby": true, "swift": true, "kotlin": true,
}

// Section is a content block of a topic (immutable value object).
type Section struct {
	id          int
	topicID     int
	orderIndex  int
	heading     string
	content     string
	imageURL    string
	codeSnippet string
	language    string
}

// New validates and creates a Section. The id is assigned by storage.
func New(topicID, orderIndex int, heading, content, imageURL, codeSnippet, language string) (Section, error) {
	if topicID <= 0 {
		return Section{}, domain.NewValidationError("topic_id", "is required")
	}
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return Section{}, domain.NewValidationError("heading", "is required")
	}
	if content == "" {
		return Section{}, domain.NewValidationError("content", "is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLen {
		return Section{}, domain.NewValidationError("content", "must be at most 10000 characters")
	}
	if language != "" && !supportedLanguages[strings.ToLower(language)] {
		return Section{}, domain.NewValidationError("language", "is not a supported snippet language")
	}

	return Section{
		topicID:     topicID,
		orderIndex:  orderIndex,
		heading:     heading,
		content:     content,
		imageURL:    imageURL,
		codeSnippet: codeSnippet,
		language:    strings.ToLower(language),
	}, nil
}

// Reconstruct creates a Section without validation (storage hydration).
func Reconstruct(id, topicID, orderIndex int, heading, content, imageURL, codeSnippet, language string) Section {
	return Section{
		id:          id,
		topicID:     topicID,
		orderIndex:  orderIndex,
		heading:     heading,
		content:     content,
		imageURL:    imageURL,
		codeSnippet: codeSnippet,
		language:    language,
	}
}

// WithID returns a copy with the storage-assigned id.
func (s Section) WithID(id int) Section {
	s.id = id
	return s
}

// ID returns the section identifier.
func (s Section) ID() int { return s.id }

// TopicID returns the owning topic id.
func (s Section) TopicID() int { return s.topicID }

// OrderIndex returns the display position within the topic.
func (s Section) OrderIndex() int { return s.orderIndex }

// Heading returns the section heading.
func (s Section) Heading() string { return s.heading }

// Content returns the section body.
func (s Section) Content() string { return s.content }

// ImageURL returns the illustration URL, empty when absent.
func (s Section) ImageURL() string { return s.imageURL }

// CodeSnippet returns the code example, empty when absent.
func (s Section) CodeSnippet() string { return s.codeSnippet }

// Language returns the snippet language, empty when absent.
func (s Section) Language() string { return s.language }
