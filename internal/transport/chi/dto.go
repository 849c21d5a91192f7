package chi

import (
	"time"

	domcategory "github.com/hoclieu/tracuu/internal/domain/category"
	domsection "github.com/hoclieu/tracuu/internal/domain/section"
	"github.com/hoclieu/tracuu/internal/domain/search/result"
	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
	domtopic "github.com/hoclieu/tracuu/internal/domain/topic"
	categoryuc "github.com/hoclieu/tracuu/internal/usecase/category"
	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
)

// errorCode identifies an API error class for clients.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeNotFound         errorCode = "not_found"
	codeTopicNotFound    errorCode = "topic_not_found"
	codeSectionNotFound  errorCode = "section_not_found"
	codeCategoryNotFound errorCode = "category_not_found"
	codeTagNotFound      errorCode = "tag_not_found"
	codeAlreadyExists    errorCode = "already_exists"
	codeCategoryNotEmpty errorCode = "category_not_empty"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// --- topics ---

type createTopicRequest struct {
	Title           string `json:"title"`
	ShortDefinition string `json:"short_definition"`
	CategoryID      int    `json:"category_id"`
}

type updateTopicRequest struct {
	Title           *string `json:"title"`
	ShortDefinition *string `json:"short_definition"`
	CategoryID      *int    `json:"category_id"`
}

type topicResponse struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	ShortDefinition string    `json:"short_definition"`
	CategoryID      int       `json:"category_id"`
	CreatedAt       time.Time `json:"created_at"`
	TagIDs          []int     `json:"tag_ids"`
}

type topicDetailResponse struct {
	topicResponse
	Sections []sectionResponse `json:"sections"`
}

type topicListResponse struct {
	Items []topicResponse `json:"items"`
	Total int             `json:"total"`
}

func topicToDTO(t domtopic.Topic) topicResponse {
	tagIDs := t.TagIDs()
	if tagIDs == nil {
		tagIDs = []int{}
	}
	return topicResponse{
		ID:              t.ID(),
		Title:           t.Title(),
		ShortDefinition: t.ShortDefinition(),
		CategoryID:      t.CategoryID(),
		CreatedAt:       time.UnixMilli(t.CreatedAt()).UTC(),
		TagIDs:          tagIDs,
	}
}

func topicDetailToDTO(d topicuc.Detail) topicDetailResponse {
	sections := make([]sectionResponse, len(d.Sections))
	for i, s := range d.Sections {
		sections[i] = sectionToDTO(s)
	}
	return topicDetailResponse{
		topicResponse: topicToDTO(d.Topic),
		Sections:      sections,
	}
}

// --- sections ---

type createSectionRequest struct {
	TopicID     int    `json:"topic_id"`
	OrderIndex  int    `json:"order_index"`
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	CodeSnippet string `json:"code_snippet"`
	Language    string `json:"language"`
}

type updateSectionRequest struct {
	OrderIndex  *int    `json:"order_index"`
	Heading     *string `json:"heading"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"image_url"`
	CodeSnippet *string `json:"code_snippet"`
	Language    *string `json:"language"`
}

type sectionResponse struct {
	ID          int    `json:"id"`
	TopicID     int    `json:"topic_id"`
	OrderIndex  int    `json:"order_index"`
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty"`
	CodeSnippet string `json:"code_snippet,omitempty"`
	Language    string `json:"language,omitempty"`
}

func sectionToDTO(s domsection.Section) sectionResponse {
	return sectionResponse{
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

// --- categories ---

type categoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type categoryResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	TopicCount *int   `json:"topic_count,omitempty"`
}

func categoryToDTO(c domcategory.Category) categoryResponse {
	return categoryResponse{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
}

func categorySummaryToDTO(s categoryuc.Summary) categoryResponse {
	resp := categoryToDTO(s.Category)
	count := s.TopicCount
	resp.TopicCount = &count
	return resp
}

// --- tags ---

type tagRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type tagResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func tagToDTO(tg domtag.Tag) tagResponse {
	return tagResponse{ID: tg.ID(), Name: tg.Name(), Slug: tg.Slug(), Description: tg.Description()}
}

// --- search ---

type searchTopicItem struct {
	topicResponse
	Score float64 `json:"relevance_score"`
}

type searchSectionItem struct {
	ID      int     `json:"id"`
	TopicID int     `json:"topic_id"`
	Heading string  `json:"heading"`
	Preview string  `json:"preview"`
	Score   float64 `json:"relevance_score"`
}

type searchCategoryItem struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	TopicCount int     `json:"topic_count"`
	Score      float64 `json:"relevance_score"`
}

type searchResponse struct {
	Query        string               `json:"query"`
	Topics       []searchTopicItem    `json:"topics"`
	Sections     []searchSectionItem  `json:"sections"`
	Categories   []searchCategoryItem `json:"categories"`
	TotalResults int                  `json:"total_results"`
}

func searchToDTO(resp result.Response) searchResponse {
	out := searchResponse{
		Query:        resp.Query,
		Topics:       make([]searchTopicItem, len(resp.Topics)),
		Sections:     make([]searchSectionItem, len(resp.Sections)),
		Categories:   make([]searchCategoryItem, len(resp.Categories)),
		TotalResults: resp.TotalResults(),
	}
	for i := range resp.Topics {
		out.Topics[i] = searchTopicItem{
			topicResponse: topicToDTO(resp.Topics[i].Record()),
			Score:         resp.Topics[i].Score(),
		}
	}
	for i := range resp.Sections {
		rec := resp.Sections[i].Record()
		out.Sections[i] = searchSectionItem{
			ID:      rec.ID(),
			TopicID: rec.TopicID(),
			Heading: rec.Heading(),
			Preview: resp.Sections[i].Preview(),
			Score:   resp.Sections[i].Score(),
		}
	}
	for i := range resp.Categories {
		rec := resp.Categories[i].Record()
		out.Categories[i] = searchCategoryItem{
			ID:         rec.ID(),
			Name:       rec.Name(),
			Slug:       rec.Slug(),
			TopicCount: resp.Categories[i].TopicCount(),
			Score:      resp.Categories[i].Score(),
		}
	}
	return out
}

// --- related ---

type relatedTopicItem struct {
	topicResponse
	Score float64 `json:"similarity_score"`
}

type relatedResponse struct {
	TopicID int                `json:"topic_id"`
	Items   []relatedTopicItem `json:"items"`
}

func relatedToDTO(topicID int, items []result.RelatedTopic) relatedResponse {
	out := relatedResponse{TopicID: topicID, Items: make([]relatedTopicItem, len(items))}
	for i := range items {
		out.Items[i] = relatedTopicItem{
			topicResponse: topicToDTO(items[i].Record()),
			Score:         items[i].Score(),
		}
	}
	return out
}
