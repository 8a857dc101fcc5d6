package valueobject

import (
	"errors"
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		offset  int
		wantErr error
	}{
		{name: "minimum limit", limit: 1, offset: 0},
		{name: "maximum limit", limit: 100, offset: 500},
		{name: "limit zero rejected", limit: 0, offset: 0, wantErr: ErrLimitOutOfRange},
		{name: "limit above maximum rejected", limit: 101, offset: 0, wantErr: ErrLimitOutOfRange},
		{name: "negative offset rejected", limit: 10, offset: -1, wantErr: ErrNegativeOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPagination(tt.limit, tt.offset)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPaginationFromPage(t *testing.T) {
	t.Run("derives offset from page", func(t *testing.T) {
		p, err := PaginationFromPage(3, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Offset() != 40 {
			t.Errorf("expected offset 40, got %d", p.Offset())
		}
		if p.Page() != 3 {
			t.Errorf("expected page 3, got %d", p.Page())
		}
	})

	t.Run("page zero rejected", func(t *testing.T) {
		if _, err := PaginationFromPage(0, 20); !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("expected ErrPageOutOfRange, got %v", err)
		}
	})
}

func TestTransactionListOrderFrom(t *testing.T) {
	for _, direction := range []SortDirection{SortAsc, SortDesc} {
		t.Run(string(direction), func(t *testing.T) {
			order := TransactionListOrderFrom(direction)
			keys := order.Keys()
			if len(keys) != 2 {
				t.Fatalf("expected 2 sort keys, got %d", len(keys))
			}
			if keys[0].Field != TransactionSortFieldDate || keys[1].Field != TransactionSortFieldID {
				t.Errorf("expected [date, id] fields, got [%s, %s]", keys[0].Field, keys[1].Field)
			}
			for _, key := range keys {
				if key.Direction != direction {
					t.Errorf("expected direction %s on field %s, got %s", direction, key.Field, key.Direction)
				}
			}
		})
	}
}

func TestParseSortDirection(t *testing.T) {
	if _, err := ParseSortDirection("ascending"); !errors.Is(err, ErrInvalidSortDirection) {
		t.Errorf("expected ErrInvalidSortDirection, got %v", err)
	}
	if direction, err := ParseSortDirection("desc"); err != nil || direction != SortDesc {
		t.Errorf("expected desc to parse, got %v %v", direction, err)
	}
}

func TestParseCategorySortField(t *testing.T) {
	for _, valid := range []string{"name", "createdAt", "displayOrder"} {
		if _, err := ParseCategorySortField(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParseCategorySortField("updatedAt"); !errors.Is(err, ErrInvalidCategorySortField) {
		t.Errorf("expected ErrInvalidCategorySortField, got %v", err)
	}
}
