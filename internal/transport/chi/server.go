package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hoclieu/tracuu/internal/config"
	"github.com/hoclieu/tracuu/internal/domain"
	categoryuc "github.com/hoclieu/tracuu/internal/usecase/category"
	healthuc "github.com/hoclieu/tracuu/internal/usecase/health"
	relateduc "github.com/hoclieu/tracuu/internal/usecase/related"
	searchuc "github.com/hoclieu/tracuu/internal/usecase/search"
	sectionuc "github.com/hoclieu/tracuu/internal/usecase/section"
	taguc "github.com/hoclieu/tracuu/internal/usecase/tag"
	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the knowledge base over HTTP.
type Server struct {
	search     *searchuc.Service
	related    *relateduc.Service
	topics     *topicuc.Service
	sections   *sectionuc.Service
	categories *categoryuc.Service
	tags       *taguc.Service
	health     *healthuc.Service
	logger     *zap.Logger

	searchCfg  config.SearchConfig
	relatedCfg config.RelatedConfig

	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	related *relateduc.Service,
	topics *topicuc.Service,
	sections *sectionuc.Service,
	categories *categoryuc.Service,
	tags *taguc.Service,
	health *healthuc.Service,
	searchCfg config.SearchConfig,
	relatedCfg config.RelatedConfig,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:     search,
		related:    related,
		topics:     topics,
		sections:   sections,
		categories: categories,
		tags:       tags,
		health:     health,
		searchCfg:  searchCfg,
		relatedCfg: relatedCfg,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrTopicNotFound, http.StatusNotFound, codeTopicNotFound),
		sentinelHandler(domain.ErrSectionNotFound, http.StatusNotFound, codeSectionNotFound),
		sentinelHandler(domain.ErrCategoryNotFound, http.StatusNotFound, codeCategoryNotFound),
		sentinelHandler(domain.ErrTagNotFound, http.StatusNotFound, codeTagNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrCategoryNotEmpty, http.StatusConflict, codeCategoryNotEmpty),
		validationHandler,
	}
	return s
}

// MountRoutes registers all API routes on the given router.
func (s *Server) MountRoutes(r chirouter.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chirouter.Router) {
		r.Get("/search", s.Search)

		r.Route("/topics", func(r chirouter.Router) {
			r.Post("/", s.CreateTopic)
			r.Get("/", s.ListTopics)
			r.Get("/{id}", s.GetTopic)
			r.Patch("/{id}", s.UpdateTopic)
			r.Delete("/{id}", s.DeleteTopic)
			r.Get("/{id}/related", s.RelatedTopics)
			r.Get("/{id}/sections", s.ListTopicSections)
			r.Post("/{id}/tags/{tagID}", s.AttachTag)
			r.Delete("/{id}/tags/{tagID}", s.DetachTag)
		})

		r.Route("/sections", func(r chirouter.Router) {
			r.Post("/", s.CreateSection)
			r.Get("/{id}", s.GetSection)
			r.Patch("/{id}", s.UpdateSection)
			r.Delete("/{id}", s.DeleteSection)
		})

		r.Route("/categories", func(r chirouter.Router) {
			r.Post("/", s.CreateCategory)
			r.Get("/", s.ListCategories)
			r.Get("/{id}", s.GetCategory)
			r.Put("/{id}", s.UpdateCategory)
			r.Delete("/{id}", s.DeleteCategory)
		})

		r.Route("/tags", func(r chirouter.Router) {
			r.Post("/", s.CreateTag)
			r.Get("/", s.ListTags)
			r.Get("/{id}", s.GetTag)
			r.Put("/{id}", s.UpdateTag)
			r.Delete("/{id}", s.DeleteTag)
		})
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := s.searchCfg.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}
	if limit > s.searchCfg.MaxLimit {
		limit = s.searchCfg.MaxLimit
	}

	tagIDs, err := parseTagsParam(r.URL.Query().Get("tags"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	resp, err := s.search.Search(r.Context(), query, limit, tagIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchToDTO(resp))
}

// RelatedTopics handles GET /api/v1/topics/{id}/related.
func (s *Server) RelatedTopics(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	topN := s.relatedCfg.DefaultTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "top_n must be a positive integer")
			return
		}
		topN = v
	}
	if topN > s.relatedCfg.MaxTopN {
		topN = s.relatedCfg.MaxTopN
	}

	items, err := s.related.FindRelated(r.Context(), id, topN)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relatedToDTO(id, items))
}

// CreateTopic handles POST /api/v1/topics.
func (s *Server) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := s.topics.Create(r.Context(), req.Title, req.ShortDefinition, req.CategoryID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, topicToDTO(created))
}

// ListTopics handles GET /api/v1/topics.
func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	skip, ok := s.queryInt(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := s.queryInt(w, r, "limit", 0)
	if !ok {
		return
	}

	topics, err := s.topics.List(r.Context(), skip, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]topicResponse, len(topics))
	for i, t := range topics {
		items[i] = topicToDTO(t)
	}
	writeJSON(w, http.StatusOK, topicListResponse{Items: items, Total: len(items)})
}

// GetTopic handles GET /api/v1/topics/{id}.
func (s *Server) GetTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := s.topics.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topicDetailToDTO(detail))
}

// UpdateTopic handles PATCH /api/v1/topics/{id}.
func (s *Server) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := s.topics.Update(r.Context(), id, topicuc.UpdateParams{
		Title:           req.Title,
		ShortDefinition: req.ShortDefinition,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topicToDTO(updated))
}

// DeleteTopic handles DELETE /api/v1/topics/{id}.
func (s *Server) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.topics.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AttachTag handles POST /api/v1/topics/{id}/tags/{tagID}.
func (s *Server) AttachTag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := s.pathID(w, r, "tagID")
	if !ok {
		return
	}
	if err := s.topics.AttachTag(r.Context(), id, tagID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DetachTag handles DELETE /api/v1/topics/{id}/tags/{tagID}.
func (s *Server) DetachTag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := s.pathID(w, r, "tagID")
	if !ok {
		return
	}
	if err := s.topics.DetachTag(r.Context(), id, tagID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTopicSections handles GET /api/v1/topics/{id}/sections.
func (s *Server) ListTopicSections(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	sections, err := s.sections.ListByTopic(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]sectionResponse, len(sections))
	for i, sec := range sections {
		items[i] = sectionToDTO(sec)
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateSection handles POST /api/v1/sections.
func (s *Server) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req createSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := s.sections.Create(r.Context(), sectionuc.CreateParams{
		TopicID:     req.TopicID,
		OrderIndex:  req.OrderIndex,
		Heading:     req.Heading,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		CodeSnippet: req.CodeSnippet,
		Language:    req.Language,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sectionToDTO(created))
}

// GetSection handles GET /api/v1/sections/{id}.
func (s *Server) GetSection(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	sec, err := s.sections.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sectionToDTO(sec))
}

// UpdateSection handles PATCH /api/v1/sections/{id}.
func (s *Server) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := s.sections.Update(r.Context(), id, sectionuc.UpdateParams{
		OrderIndex:  req.OrderIndex,
		Heading:     req.Heading,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		CodeSnippet: req.CodeSnippet,
		Language:    req.Language,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sectionToDTO(updated))
}

// DeleteSection handles DELETE /api/v1/sections/{id}.
func (s *Server) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.sections.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := s.categories.Create(r.Context(), req.Name, req.Slug)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryToDTO(created))
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.categories.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]categoryResponse, len(summaries))
	for i, sum := range summaries {
		items[i] = categorySummaryToDTO(sum)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetCategory handles GET /api/v1/categories/{id}.
func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := s.categories.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToDTO(c))
}

// UpdateCategory handles PUT /api/v1/categories/{id}.
func (s *Server) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := s.categories.Update(r.Context(), id, req.Name, req.Slug)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToDTO(updated))
}

// DeleteCategory handles DELETE /api/v1/categories/{id}.
func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.categories.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateTag handles POST /api/v1/tags.
func (s *Server) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := s.tags.Create(r.Context(), req.Name, req.Slug, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tagToDTO(created))
}

// ListTags handles GET /api/v1/tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]tagResponse, len(tags))
	for i, tg := range tags {
		items[i] = tagToDTO(tg)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetTag handles GET /api/v1/tags/{id}.
func (s *Server) GetTag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	tg, err := s.tags.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tagToDTO(tg))
}

// UpdateTag handles PUT /api/v1/tags/{id}.
func (s *Server) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := s.tags.Update(r.Context(), id, req.Name, req.Slug, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tagToDTO(updated))
}

// DeleteTag handles DELETE /api/v1/tags/{id}.
func (s *Server) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.tags.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathID parses a positive integer path parameter, writing 400 on failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chirouter.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryInt parses an optional non-negative integer query parameter.
func (s *Server) queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}

// parseTagsParam parses a comma-separated list of tag ids.
func parseTagsParam(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		id, err := strconv.Atoi(p)
		if err != nil || id <= 0 {
			return nil, errors.New("tags must be a comma-separated list of positive integers")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrTopicNotFound,
		domain.ErrSectionNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrTagNotFound,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrCategoryNotEmpty,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	if errors.Is(err, domain.ErrValidation) {
		return domain.ErrValidation.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationHandler maps domain validation failures to 422.
func validationHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrValidation) {
		return false
	}
	writeError(w, http.StatusUnprocessableEntity, codeValidationFailed, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
