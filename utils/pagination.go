package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxPageLimit = 100

// ParsePagination reads ?page and ?limit, clamping to sane bounds.
func ParsePagination(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	// keep (page-1)*limit inside int
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return page, limit, (page - 1) * limit
}

// Paginate returns the window of items for page/limit.
func Paginate[T any](items []T, page, limit int) []T {
	if limit < 1 {
		return []T{}
	}
	if page < 1 {
		page = 1
	}
	if page-1 > len(items)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
