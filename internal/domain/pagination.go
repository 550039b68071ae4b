package domain

import "math"

// Pagination defaults and limits for candidate listings. MaxPage is the
// largest page whose offset fits in an int at MaxLimit.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = math.MaxInt/MaxLimit + 1
)

// Pagination is a resolved 1-based page and its page size.
type Pagination struct {
	Page  int
	Limit int
}

// ResolvePagination applies defaults to optional page and limit values.
// Nil or non-positive values fall back to DefaultPage and DefaultLimit;
// page is capped at MaxPage and limit at MaxLimit.
func ResolvePagination(page, limit *int) Pagination {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxLimit)
	}
	return p
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * Limit.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
