// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// Defaults and bounds for pagination query parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationQuery holds sanitized pagination parameters ready for a LIMIT /
// OFFSET database query.
type PaginationQuery struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePaginationParams reads and validates 'page' and 'limit' from the
// request query string, applying defaults for missing or invalid values and
// capping limit at MaxLimit.
func ParsePaginationParams(c *fiber.Ctx) PaginationQuery {
	pageStr := c.Query("page", strconv.Itoa(DefaultPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		if pageStr != strconv.Itoa(DefaultPage) {
			zlog.Warn().Str("query_param", "page").Str("value", pageStr).Int("default", DefaultPage).Msg("Invalid or missing 'page' query parameter, using default")
		}
		page = DefaultPage
	}

	limitStr := c.Query("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		if limitStr != strconv.Itoa(DefaultLimit) {
			zlog.Warn().Str("query_param", "limit").Str("value", limitStr).Int("default", DefaultLimit).Msg("Invalid or missing 'limit' query parameter, using default")
		}
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		zlog.Warn().Int("requested_limit", limit).Int("max_limit", MaxLimit).Msg("Requested 'limit' exceeds maximum allowed, capping to max limit")
		limit = MaxLimit
	}

	offset := (page - 1) * limit

	return PaginationQuery{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// PaginationMeta is the page-navigation metadata sent alongside paginated
// data.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// BuildPaginationMeta computes pagination metadata from the total item count,
// the limit in use and the requested page.
func BuildPaginationMeta(totalItems, limit, page int) PaginationMeta {
	totalPages := 0
	if totalItems > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	} else if totalItems == 0 {
		totalPages = 0
	} else {
		totalPages = 1
	}

	// Keep CurrentPage consistent even when the requested page is past the
	// end of the data.
	currentPage := page
	if currentPage > totalPages && totalPages > 0 {
		currentPage = totalPages
	} else if totalPages == 0 && currentPage > 1 {
		currentPage = 1
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PerPage:     limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// PaginatedResponse wraps a page of data and its metadata in the standard API
// envelope. T is the item type, e.g. PaginatedResponse[models.PublicMonster].
type PaginatedResponse[T any] struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []T            `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// NewPaginatedResponse builds a PaginatedResponse. A nil data slice becomes an
// empty slice so JSON output is [] rather than null.
func NewPaginatedResponse[T any](message string, data []T, meta PaginationMeta) PaginatedResponse[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return PaginatedResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// PaginatedResponseGeneric exists only for Swagger documentation, which does
// not understand Go generics. Use PaginatedResponse[T] in actual code.
type PaginatedResponseGeneric struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []interface{}  `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}
