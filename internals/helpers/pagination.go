// file: internals/helpers/pagination.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Query params (page/per_page/sort)
=================================*/

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

var DefaultOpts = Options{DefaultPerPage: 20, MaxPerPage: 100}

func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// SafeOrderClause maps a sortable key onto a whitelisted physical column.
func (p Params) SafeOrderClause(allowed map[string]string, defaultKey string) (string, error) {
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no sortable column for %q", defaultKey)
		}
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir), nil
}

// ParseFiber reads ?page= / ?per_page= (alias ?limit=) / ?sort_by= / ?order=
// and normalizes them.
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt Options) Params {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit"))
	}
	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = opt.DefaultPerPage
	}
	if opt.MaxPerPage > 0 && perPage > opt.MaxPerPage {
		perPage = opt.MaxPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by", defaultSortBy))
	sortOrder := strings.TrimSpace(c.Query("order", defaultSortOrder))

	return Params{Page: page, PerPage: perPage, SortBy: sortBy, SortOrder: sortOrder}
}

/* ===============================
   Response meta
=================================*/

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildMeta(total int64, p Params) Meta {
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = DefaultOpts.DefaultPerPage
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage)) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Meta{
		Page:       p.Page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
