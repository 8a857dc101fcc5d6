// Package valueobject contains domain value objects for the Household Ledger system.
package valueobject

import "errors"

const (
	// MinPageLimit is the smallest allowed page size.
	MinPageLimit = 1
	// MaxPageLimit is the largest allowed page size.
	MaxPageLimit = 100
)

// Pagination value object errors.
var (
	// ErrLimitOutOfRange is returned when the limit is outside [1, 100].
	ErrLimitOutOfRange = errors.New("limit must be between 1 and 100")

	// ErrNegativeOffset is returned when the offset is negative.
	ErrNegativeOffset = errors.New("offset must not be negative")

	// ErrPageOutOfRange is returned when the page number is below 1.
	ErrPageOutOfRange = errors.New("page must be 1 or greater")
)

// Pagination is a validated limit/offset window.
type Pagination struct {
	limit  int
	offset int
}

// NewPagination creates a Pagination from an explicit limit and offset.
func NewPagination(limit, offset int) (Pagination, error) {
	if limit < MinPageLimit || limit > MaxPageLimit {
		return Pagination{}, ErrLimitOutOfRange
	}
	if offset < 0 {
		return Pagination{}, ErrNegativeOffset
	}
	return Pagination{limit: limit, offset: offset}, nil
}

// PaginationFromPage creates a Pagination from a 1-based page number,
// deriving offset = (page-1) * limit.
func PaginationFromPage(page, limit int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, ErrPageOutOfRange
	}
	return NewPagination(limit, (page-1)*limit)
}

// Limit returns the page size.
func (p Pagination) Limit() int { return p.limit }

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int { return p.offset }

// Page returns the 1-based page number implied by limit and offset.
func (p Pagination) Page() int {
	if p.limit == 0 {
		return 1
	}
	return p.offset/p.limit + 1
}
