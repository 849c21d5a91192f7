package tracuu

import "github.com/hoclieu/tracuu/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrTopicNotFound    = domain.ErrTopicNotFound
	ErrSectionNotFound  = domain.ErrSectionNotFound
	ErrCategoryNotFound = domain.ErrCategoryNotFound
	ErrTagNotFound      = domain.ErrTagNotFound
	ErrAlreadyExists    = domain.ErrAlreadyExists
	ErrCategoryNotEmpty = domain.ErrCategoryNotEmpty
	ErrValidation       = domain.ErrValidation
)
