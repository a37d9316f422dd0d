package usecase

import (
	"math"

	"agadev/internal/domain/repository"
)

// Page sizes.
const (
	DefaultPublicPageSize = 10
	DefaultAdminPageSize  = 20
	DefaultMediaPageSize  = 50
	MaxPageSize           = 100

	// MaxPageNumber keeps (page-1)*limit within an int32 offset.
	MaxPageNumber = math.MaxInt32 / MaxPageSize
)

// Pagination is the metadata returned with every paginated list.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NormalizePage clamps a requested page to sane bounds.
func NormalizePage(number, limit, defaultLimit int) repository.Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return repository.Page{Number: number, Limit: limit}
}

// NewPagination builds the response metadata for a page and its total.
func NewPagination(page repository.Page, total int64) Pagination {
	pages := 0
	if page.Limit > 0 {
		pages = int((total + int64(page.Limit) - 1) / int64(page.Limit))
	}

	return Pagination{
		Page:  page.Number,
		Limit: page.Limit,
		Total: total,
		Pages: pages,
	}
}
