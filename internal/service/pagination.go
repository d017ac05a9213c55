package service

import "math"

// roundSum rounds monetary aggregates to the nearest whole unit at the
// response boundary; intermediate math stays unrounded.
func roundSum(v float64) float64 {
	return math.Round(v)
}

// Pagination describes the page window of a list response
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPagination computes the page count for a total row count and page size
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}
