package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/household-ledger/backend/internal/domain/valueobject"
)

func newTestTransaction(t *testing.T) *Transaction {
	t.Helper()
	amount, err := valueobject.MoneyFromInt(450, "JPY")
	if err != nil {
		t.Fatalf("failed to build amount: %v", err)
	}
	date, err := valueobject.NewTransactionDate(2025, 1, 1)
	if err != nil {
		t.Fatalf("failed to build date: %v", err)
	}
	txn, err := NewTransaction(UserID(1), TransactionTypeExpense, "Lunch", amount, date, []CategoryID{10}, "cafe")
	if err != nil {
		t.Fatalf("failed to build transaction: %v", err)
	}
	return txn
}

func TestNewTransactionValidation(t *testing.T) {
	amount, _ := valueobject.MoneyFromInt(100, "JPY")
	zero, _ := valueobject.MoneyFromInt(0, "JPY")
	date, _ := valueobject.NewTransactionDate(2025, 1, 1)

	tests := []struct {
		name        string
		txnType     TransactionType
		title       string
		amount      valueobject.Money
		categoryIDs []CategoryID
		memo        string
		wantErr     error
	}{
		{name: "valid", txnType: TransactionTypeExpense, title: "Lunch", amount: amount, categoryIDs: []CategoryID{10}},
		{name: "unknown type", txnType: "transfer", title: "Lunch", amount: amount, categoryIDs: []CategoryID{10}, wantErr: ErrInvalidType},
		{name: "empty title", txnType: TransactionTypeExpense, title: "   ", amount: amount, categoryIDs: []CategoryID{10}, wantErr: ErrTitleRequired},
		{name: "title over 100 chars", txnType: TransactionTypeExpense, title: strings.Repeat("a", 101), amount: amount, categoryIDs: []CategoryID{10}, wantErr: ErrTitleTooLong},
		{name: "memo over 500 chars", txnType: TransactionTypeExpense, title: "Lunch", amount: amount, categoryIDs: []CategoryID{10}, memo: strings.Repeat("m", 501), wantErr: ErrMemoTooLong},
		{name: "zero amount", txnType: TransactionTypeExpense, title: "Lunch", amount: zero, categoryIDs: []CategoryID{10}, wantErr: ErrAmountNotPositive},
		{name: "no categories", txnType: TransactionTypeExpense, title: "Lunch", amount: amount, categoryIDs: nil, wantErr: ErrNoCategories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(UserID(1), tt.txnType, tt.title, tt.amount, date, tt.categoryIDs, tt.memo)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransactionMutators(t *testing.T) {
	t.Run("ChangeTitle trims and validates", func(t *testing.T) {
		txn := newTestTransaction(t)
		if err := txn.ChangeTitle("  Dinner  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txn.Title != "Dinner" {
			t.Errorf("expected trimmed title, got %q", txn.Title)
		}
		if err := txn.ChangeTitle(""); !errors.Is(err, ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("ChangeAmount rejects zero", func(t *testing.T) {
		txn := newTestTransaction(t)
		zero, _ := valueobject.MoneyFromInt(0, "JPY")
		if err := txn.ChangeAmount(zero); !errors.Is(err, ErrAmountNotPositive) {
			t.Errorf("expected ErrAmountNotPositive, got %v", err)
		}
	})

	t.Run("ChangeCategories rejects empty list", func(t *testing.T) {
		txn := newTestTransaction(t)
		if err := txn.ChangeCategories(nil); !errors.Is(err, ErrNoCategories) {
			t.Errorf("expected ErrNoCategories, got %v", err)
		}
		if err := txn.ChangeCategories([]CategoryID{5, 7}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txn.PrimaryCategoryID() != CategoryID(5) {
			t.Errorf("expected primary category 5, got %d", txn.PrimaryCategoryID())
		}
	})

	t.Run("mutation bumps UpdatedAt", func(t *testing.T) {
		txn := newTestTransaction(t)
		before := txn.UpdatedAt
		if err := txn.ChangeMemo("updated memo"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txn.UpdatedAt.Before(before) {
			t.Error("expected UpdatedAt to move forward")
		}
	})

	t.Run("Delete sets soft-delete marker", func(t *testing.T) {
		txn := newTestTransaction(t)
		if txn.IsDeleted() {
			t.Fatal("new transaction must not be deleted")
		}
		txn.Delete()
		if !txn.IsDeleted() {
			t.Error("expected IsDeleted after Delete")
		}
	})
}

func TestCategoryOwnership(t *testing.T) {
	owner := UserID(1)
	other := UserID(2)

	custom := NewCategory("Groceries", CategoryTypeExpense, owner)
	if !custom.CanBeEditedBy(owner) {
		t.Error("owner must be able to edit a custom category")
	}
	if custom.CanBeEditedBy(other) {
		t.Error("non-owner must not be able to edit a custom category")
	}
	if custom.IsVisibleTo(other) {
		t.Error("custom category must not be visible to other users")
	}

	def := &Category{ID: 1, Name: "Salary", Type: CategoryTypeIncome, IsDefault: true}
	if !def.IsVisibleTo(owner) || !def.IsVisibleTo(other) {
		t.Error("default category must be visible to all users")
	}
	if def.CanBeEditedBy(owner) {
		t.Error("default category must not be editable by any user")
	}
}

func TestUserCategoryDisplayName(t *testing.T) {
	custom := "My Food"
	uc := &UserCategory{CategoryID: 1, Name: "Food", CustomName: &custom}
	if uc.DisplayName() != "My Food" {
		t.Errorf("expected custom name, got %q", uc.DisplayName())
	}
	uc.CustomName = nil
	if uc.DisplayName() != "Food" {
		t.Errorf("expected shared name, got %q", uc.DisplayName())
	}
}
