package valueobject

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "plain name", raw: "Groceries", want: "Groceries"},
		{name: "surrounding whitespace is trimmed", raw: "  Rent  ", want: "Rent"},
		{name: "multibyte name within limit", raw: "食費", want: "食費"},
		{name: "empty rejected", raw: "", wantErr: ErrCategoryNameEmpty},
		{name: "whitespace only rejected", raw: "   ", wantErr: ErrCategoryNameEmpty},
		{name: "51 characters rejected", raw: strings.Repeat("a", 51), wantErr: ErrCategoryNameTooLong},
		{name: "50 characters allowed", raw: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCategoryName(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.String())
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "meets policy", raw: "VeryStrong#123"},
		{name: "short rejected", raw: "short", wantErr: ErrPasswordTooShort},
		{name: "eleven characters rejected", raw: "abcdefghij!", wantErr: ErrPasswordTooShort},
		{name: "long but no symbol rejected", raw: "abcdefghijkl1234", wantErr: ErrPasswordNoSymbol},
		{name: "whitespace does not count toward length", raw: "   short!   ", wantErr: ErrPasswordTooShort},
		{name: "length counts runes not bytes", raw: "ひみつのあいことば!", wantErr: ErrPasswordTooShort},
		{name: "multibyte password of policy length accepted", raw: "ひみつのあいことばです1!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPassword(tt.raw); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
