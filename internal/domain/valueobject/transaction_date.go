// Package valueobject contains domain value objects for the Household Ledger system.
package valueobject

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinTransactionYear is the earliest year a transaction may carry.
	MinTransactionYear = 1900
	// MaxTransactionYear is the latest year a transaction may carry.
	MaxTransactionYear = 2100

	transactionDateLayout = "2006-01-02"
)

// TransactionDate value object errors.
var (
	// ErrYearOutOfRange is returned when the year is outside [1900, 2100].
	ErrYearOutOfRange = errors.New("year must be between 1900 and 2100")

	// ErrMonthOutOfRange is returned when the month is outside [1, 12].
	ErrMonthOutOfRange = errors.New("month must be between 1 and 12")

	// ErrDayOutOfRange is returned when the day does not exist in the month.
	ErrDayOutOfRange = errors.New("day is not valid for the given month")

	// ErrInvalidDateFormat is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// TransactionDate is a calendar date validated at construction time.
// Unlike time.Time it cannot hold an impossible date such as Feb 30.
type TransactionDate struct {
	year  int
	month int
	day   int
}

// NewTransactionDate creates a TransactionDate from calendar components.
func NewTransactionDate(year, month, day int) (TransactionDate, error) {
	if year < MinTransactionYear || year > MaxTransactionYear {
		return TransactionDate{}, ErrYearOutOfRange
	}
	if month < 1 || month > 12 {
		return TransactionDate{}, ErrMonthOutOfRange
	}
	if day < 1 || day > daysInMonth(year, month) {
		return TransactionDate{}, ErrDayOutOfRange
	}
	return TransactionDate{year: year, month: month, day: day}, nil
}

// ParseTransactionDate parses a YYYY-MM-DD string into a TransactionDate.
func ParseTransactionDate(value string) (TransactionDate, error) {
	parsed, err := time.Parse(transactionDateLayout, value)
	if err != nil {
		return TransactionDate{}, ErrInvalidDateFormat
	}
	// time.Parse normalizes overflow dates (Feb 30 -> Mar 2), so construct
	// through NewTransactionDate to keep calendar validation authoritative.
	date, err := NewTransactionDate(parsed.Year(), int(parsed.Month()), parsed.Day())
	if err != nil {
		return TransactionDate{}, err
	}
	if date.Format() != value {
		return TransactionDate{}, ErrInvalidDateFormat
	}
	return date, nil
}

// Year returns the year component.
func (d TransactionDate) Year() int { return d.year }

// Month returns the month component.
func (d TransactionDate) Month() int { return d.month }

// Day returns the day component.
func (d TransactionDate) Day() int { return d.day }

// Format renders the date as YYYY-MM-DD.
func (d TransactionDate) Format() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Time converts the date to a UTC time.Time at midnight.
func (d TransactionDate) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether two dates are the same calendar day.
func (d TransactionDate) Equal(other TransactionDate) bool {
	return d == other
}

// Before reports whether d is strictly earlier than other.
func (d TransactionDate) Before(other TransactionDate) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly later than other.
func (d TransactionDate) After(other TransactionDate) bool {
	return other.Before(d)
}

// SameMonth reports whether both dates fall in the same year and month.
func (d TransactionDate) SameMonth(other TransactionDate) bool {
	return d.year == other.year && d.month == other.month
}

// SameYear reports whether both dates fall in the same year.
func (d TransactionDate) SameYear(other TransactionDate) bool {
	return d.year == other.year
}

// IsFuture reports whether the date is later than the calendar day of now.
func (d TransactionDate) IsFuture(now time.Time) bool {
	today := TransactionDate{year: now.Year(), month: int(now.Month()), day: now.Day()}
	return d.After(today)
}

// daysInMonth returns the number of days in the given month, leap-year aware.
func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
