package valueobject

import (
	"errors"
	"testing"
	"time"
)

func TestNewTransactionDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		day     int
		wantErr error
	}{
		{name: "ordinary date", year: 2025, month: 1, day: 15},
		{name: "leap day on leap year", year: 2024, month: 2, day: 29},
		{name: "lower year bound", year: 1900, month: 1, day: 1},
		{name: "upper year bound", year: 2100, month: 12, day: 31},
		{name: "february 30 rejected", year: 2025, month: 2, day: 30, wantErr: ErrDayOutOfRange},
		{name: "april 31 rejected", year: 2025, month: 4, day: 31, wantErr: ErrDayOutOfRange},
		{name: "leap day on non-leap year rejected", year: 2025, month: 2, day: 29, wantErr: ErrDayOutOfRange},
		{name: "year below range rejected", year: 1899, month: 12, day: 31, wantErr: ErrYearOutOfRange},
		{name: "year above range rejected", year: 2101, month: 1, day: 1, wantErr: ErrYearOutOfRange},
		{name: "month zero rejected", year: 2025, month: 0, day: 1, wantErr: ErrMonthOutOfRange},
		{name: "month thirteen rejected", year: 2025, month: 13, day: 1, wantErr: ErrMonthOutOfRange},
		{name: "day zero rejected", year: 2025, month: 1, day: 0, wantErr: ErrDayOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransactionDate(tt.year, tt.month, tt.day)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseTransactionDate(t *testing.T) {
	t.Run("format round-trips through parse", func(t *testing.T) {
		for _, value := range []string{"1900-01-01", "2024-02-29", "2025-07-31", "2100-12-31"} {
			date, err := ParseTransactionDate(value)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", value, err)
			}
			if got := date.Format(); got != value {
				t.Errorf("round-trip mismatch: %q -> %q", value, got)
			}
		}
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		for _, value := range []string{"", "2025/01/01", "2025-1-1", "01-01-2025", "2025-02-30", "not-a-date"} {
			if _, err := ParseTransactionDate(value); err == nil {
				t.Errorf("expected error for %q", value)
			}
		}
	})
}

func TestTransactionDateComparisons(t *testing.T) {
	jan := mustDate(t, 2025, 1, 10)
	janLater := mustDate(t, 2025, 1, 20)
	feb := mustDate(t, 2025, 2, 1)
	nextYear := mustDate(t, 2026, 1, 10)

	if !jan.Before(janLater) || janLater.Before(jan) {
		t.Error("Before ordering within a month is wrong")
	}
	if !feb.After(jan) {
		t.Error("expected feb to be after jan")
	}
	if !jan.SameMonth(janLater) || jan.SameMonth(feb) {
		t.Error("SameMonth comparison is wrong")
	}
	if !jan.SameYear(feb) || jan.SameYear(nextYear) {
		t.Error("SameYear comparison is wrong")
	}
	if !jan.Equal(mustDate(t, 2025, 1, 10)) {
		t.Error("expected equal dates to compare equal")
	}
}

func TestTransactionDateIsFuture(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   TransactionDate
		future bool
	}{
		{name: "tomorrow is future", date: mustDate(t, 2025, 6, 16), future: true},
		{name: "today is not future", date: mustDate(t, 2025, 6, 15), future: false},
		{name: "yesterday is not future", date: mustDate(t, 2025, 6, 14), future: false},
		{name: "far future year", date: mustDate(t, 2099, 1, 1), future: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.IsFuture(now); got != tt.future {
				t.Errorf("IsFuture(%s) = %v, want %v", tt.date.Format(), got, tt.future)
			}
		})
	}
}

func mustDate(t *testing.T, year, month, day int) TransactionDate {
	t.Helper()
	date, err := NewTransactionDate(year, month, day)
	if err != nil {
		t.Fatalf("failed to build date %04d-%02d-%02d: %v", year, month, day, err)
	}
	return date
}
