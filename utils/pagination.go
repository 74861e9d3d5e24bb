package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// PageParams adalah input pagination yang sudah divalidasi.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams membaca ?page= dan ?limit= dengan clamp:
// page minimal 1, limit di rentang 1..100.
func ParsePageParams(c *gin.Context, defaultLimit int) PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return PageParams{Page: page, Limit: limit}
}

// BuildPagination menghitung metadata halaman: totalPages = ceil(total/limit).
func BuildPagination(p PageParams, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: p.Limit,
	}
}
