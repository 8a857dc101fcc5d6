// Package valueobject contains domain value objects for the Household Ledger system.
package valueobject

import "errors"

// SortDirection represents an ascending or descending sort direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ErrInvalidSortDirection is returned when the direction is not asc or desc.
var ErrInvalidSortDirection = errors.New("sort direction must be 'asc' or 'desc'")

// ParseSortDirection validates a raw sort direction string.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch SortDirection(raw) {
	case SortAsc, SortDesc:
		return SortDirection(raw), nil
	default:
		return "", ErrInvalidSortDirection
	}
}

// Sortable fields of the transaction list.
const (
	TransactionSortFieldDate = "date"
	TransactionSortFieldID   = "id"
)

// SortKey is a single (field, direction) component of a composite order.
type SortKey struct {
	Field     string
	Direction SortDirection
}

// TransactionListOrder is the composite sort order for transaction listings:
// date is the primary key and id the stable tie-breaker, both in the same
// direction.
type TransactionListOrder struct {
	keys []SortKey
}

// TransactionListOrderFrom expands a single direction into the composite
// [(date, dir), (id, dir)] order.
func TransactionListOrderFrom(direction SortDirection) TransactionListOrder {
	return TransactionListOrder{
		keys: []SortKey{
			{Field: TransactionSortFieldDate, Direction: direction},
			{Field: TransactionSortFieldID, Direction: direction},
		},
	}
}

// ParseTransactionListOrder validates a raw direction and expands it.
func ParseTransactionListOrder(raw string) (TransactionListOrder, error) {
	direction, err := ParseSortDirection(raw)
	if err != nil {
		return TransactionListOrder{}, err
	}
	return TransactionListOrderFrom(direction), nil
}

// Keys returns the ordered sort key components.
func (o TransactionListOrder) Keys() []SortKey {
	return o.keys
}

// Direction returns the shared direction of the composite order.
func (o TransactionListOrder) Direction() SortDirection {
	if len(o.keys) == 0 {
		return SortAsc
	}
	return o.keys[0].Direction
}

// CategorySortField is a sortable field of the category list.
type CategorySortField string

const (
	CategorySortByName         CategorySortField = "name"
	CategorySortByCreatedAt    CategorySortField = "createdAt"
	CategorySortByDisplayOrder CategorySortField = "displayOrder"
)

// ErrInvalidCategorySortField is returned for an unknown category sort field.
var ErrInvalidCategorySortField = errors.New("sortBy must be 'name', 'createdAt' or 'displayOrder'")

// ParseCategorySortField validates a raw category sort field.
func ParseCategorySortField(raw string) (CategorySortField, error) {
	switch CategorySortField(raw) {
	case CategorySortByName, CategorySortByCreatedAt, CategorySortByDisplayOrder:
		return CategorySortField(raw), nil
	default:
		return "", ErrInvalidCategorySortField
	}
}
