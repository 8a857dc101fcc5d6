// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
	"gorm.io/gorm"
)

func newTransaction(t *testing.T, userID entity.UserID, txType entity.TransactionType, title string, amount int64, date string, categoryIDs []entity.CategoryID) *entity.Transaction {
	t.Helper()
	money, err := valueobject.MoneyFromInt(amount, "")
	if err != nil {
		t.Fatalf("building money: %v", err)
	}
	day, err := valueobject.ParseTransactionDate(date)
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	tx, err := entity.NewTransaction(userID, txType, title, money, day, categoryIDs, "")
	if err != nil {
		t.Fatalf("building transaction: %v", err)
	}
	return tx
}

func seedUser(t *testing.T, db *gorm.DB, userID entity.UserID) {
	t.Helper()
	user := entity.NewUser("user@example.com", "Test User", "hash")
	user.ID = userID
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
}

func seedExpenseSetup(t *testing.T, db *gorm.DB, userID entity.UserID) (adapter.TransactionRepository, entity.CategoryID) {
	t.Helper()
	seedUser(t, db, userID)
	categoryID := seedDefaultCategory(t, db, "Food", entity.CategoryTypeIDExpense)
	return NewTransactionRepository(db), categoryID
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	userID := entity.UserID(1)

	db := openTestDB(t)
	repo, categoryID := seedExpenseSetup(t, db, userID)

	created, err := repo.Create(ctx, newTransaction(t, userID, entity.TransactionTypeExpense,
		"Lunch", 450, "2025-01-01", []entity.CategoryID{categoryID}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.ID.Valid() {
		t.Fatal("expected the created transaction to carry an id")
	}

	t.Run("FindByID round-trips the amount, date and links", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil {
			t.Fatal("expected the transaction to be found")
		}
		if found.Amount.Int64() != 450 {
			t.Errorf("expected amount 450, got %d", found.Amount.Int64())
		}
		if found.Date.Format() != "2025-01-01" {
			t.Errorf("expected date '2025-01-01', got %s", found.Date.Format())
		}
		if len(found.CategoryIDs) != 1 || found.CategoryIDs[0] != categoryID {
			t.Errorf("expected category link %d, got %v", categoryID, found.CategoryIDs)
		}
	})

	t.Run("FindCategoryIDsByTransactionID preserves insertion order", func(t *testing.T) {
		second := seedDefaultCategory(t, db, "Dining", entity.CategoryTypeIDExpense)
		multi, err := repo.Create(ctx, newTransaction(t, userID, entity.TransactionTypeExpense,
			"Dinner", 1200, "2025-01-02", []entity.CategoryID{second, categoryID}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ids, err := repo.FindCategoryIDsByTransactionID(ctx, multi.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || ids[0] != second || ids[1] != categoryID {
			t.Errorf("expected order [%d %d], got %v", second, categoryID, ids)
		}
	})
}

func TestTransactionRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	userID := entity.UserID(1)

	db := openTestDB(t)
	repo, categoryID := seedExpenseSetup(t, db, userID)

	created, err := repo.Create(ctx, newTransaction(t, userID, entity.TransactionTypeExpense,
		"Lunch", 450, "2025-01-01", []entity.CategoryID{categoryID}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created.Delete()
	if err := repo.Delete(ctx, created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Error("expected the soft-deleted transaction to be invisible")
	}

	result, err := repo.ListByUserID(ctx, adapter.TransactionListQuery{
		UserID:     userID,
		Order:      valueobject.TransactionListOrderFrom(valueobject.SortDesc),
		Pagination: mustPagination(t, 1, 10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("expected soft-deleted row out of listings, got total %d", result.Total)
	}
}

func TestTransactionRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	userID := entity.UserID(1)

	db := openTestDB(t)
	repo, expenseCat := seedExpenseSetup(t, db, userID)
	incomeCat := seedDefaultCategory(t, db, "Salary", entity.CategoryTypeIDIncome)

	fixtures := []struct {
		txType entity.TransactionType
		title  string
		amount int64
		date   string
		cat    entity.CategoryID
	}{
		{entity.TransactionTypeExpense, "Lunch", 450, "2025-01-10", expenseCat},
		{entity.TransactionTypeExpense, "Coffee", 300, "2025-01-10", expenseCat},
		{entity.TransactionTypeIncome, "Paycheck", 300000, "2025-01-25", incomeCat},
		{entity.TransactionTypeExpense, "Dinner", 1200, "2025-02-01", expenseCat},
	}
	for _, f := range fixtures {
		if _, err := repo.Create(ctx, newTransaction(t, userID, f.txType, f.title, f.amount, f.date, []entity.CategoryID{f.cat})); err != nil {
			t.Fatalf("creating fixture %q: %v", f.title, err)
		}
	}

	t.Run("composite order is date then id, same direction", func(t *testing.T) {
		result, err := repo.ListByUserID(ctx, adapter.TransactionListQuery{
			UserID:     userID,
			Order:      valueobject.TransactionListOrderFrom(valueobject.SortAsc),
			Pagination: mustPagination(t, 1, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 4 {
			t.Fatalf("expected total 4, got %d", result.Total)
		}
		if result.Items[0].Title != "Lunch" || result.Items[1].Title != "Coffee" {
			t.Errorf("expected same-date rows ordered by id, got %q then %q",
				result.Items[0].Title, result.Items[1].Title)
		}
		if result.Items[3].Title != "Dinner" {
			t.Errorf("expected 'Dinner' last ascending, got %q", result.Items[3].Title)
		}
	})

	t.Run("filters by period, type and category", func(t *testing.T) {
		start := mustDate(t, "2025-01-01")
		end := mustDate(t, "2025-01-31")
		expense := entity.TransactionTypeExpense
		result, err := repo.ListByUserID(ctx, adapter.TransactionListQuery{
			UserID:      userID,
			StartDate:   &start,
			EndDate:     &end,
			Type:        &expense,
			CategoryIDs: []entity.CategoryID{expenseCat},
			Order:       valueobject.TransactionListOrderFrom(valueobject.SortDesc),
			Pagination:  mustPagination(t, 1, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("expected 2 January expenses, got %d", result.Total)
		}
	})

	t.Run("scopes to the user", func(t *testing.T) {
		result, err := repo.ListByUserID(ctx, adapter.TransactionListQuery{
			UserID:     entity.UserID(99),
			Order:      valueobject.TransactionListOrderFrom(valueobject.SortDesc),
			Pagination: mustPagination(t, 1, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 0 {
			t.Errorf("expected no rows for another user, got %d", result.Total)
		}
	})

	t.Run("GetTotals aggregates per type", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, adapter.TransactionListQuery{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.IncomeTotal.IntPart() != 300000 {
			t.Errorf("expected income total 300000, got %s", totals.IncomeTotal)
		}
		if totals.ExpenseTotal.IntPart() != 1950 {
			t.Errorf("expected expense total 1950, got %s", totals.ExpenseTotal)
		}
		if totals.NetTotal.IntPart() != 298050 {
			t.Errorf("expected net total 298050, got %s", totals.NetTotal)
		}
	})
}

func TestTransactionRepository_CategoryFilterCountsLinkedRowsOnce(t *testing.T) {
	ctx := context.Background()
	userID := entity.UserID(1)

	db := openTestDB(t)
	repo, foodCat := seedExpenseSetup(t, db, userID)
	diningCat := seedDefaultCategory(t, db, "Dining", entity.CategoryTypeIDExpense)

	// One expense linked to both categories of the filter.
	if _, err := repo.Create(ctx, newTransaction(t, userID, entity.TransactionTypeExpense,
		"Team lunch", 450, "2025-01-15", []entity.CategoryID{foodCat, diningCat})); err != nil {
		t.Fatalf("creating transaction: %v", err)
	}

	query := adapter.TransactionListQuery{
		UserID:      userID,
		CategoryIDs: []entity.CategoryID{foodCat, diningCat},
		Order:       valueobject.TransactionListOrderFrom(valueobject.SortDesc),
		Pagination:  mustPagination(t, 1, 10),
	}

	t.Run("GetTotals sums the transaction once", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.ExpenseTotal.IntPart() != 450 {
			t.Errorf("expected expense total 450, got %s", totals.ExpenseTotal)
		}
		if totals.NetTotal.IntPart() != -450 {
			t.Errorf("expected net total -450, got %s", totals.NetTotal)
		}
	})

	t.Run("ListByUserID returns the transaction once", func(t *testing.T) {
		result, err := repo.ListByUserID(ctx, query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("expected total 1, got %d", result.Total)
		}
		if len(result.Items) != 1 {
			t.Errorf("expected 1 item, got %d", len(result.Items))
		}
	})
}

func TestTransactionRepository_Update(t *testing.T) {
	ctx := context.Background()
	userID := entity.UserID(1)

	db := openTestDB(t)
	repo, categoryID := seedExpenseSetup(t, db, userID)
	other := seedDefaultCategory(t, db, "Dining", entity.CategoryTypeIDExpense)

	created, err := repo.Create(ctx, newTransaction(t, userID, entity.TransactionTypeExpense,
		"Lunch", 450, "2025-01-01", []entity.CategoryID{categoryID}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := created.ChangeTitle("Team lunch"); err != nil {
		t.Fatalf("changing title: %v", err)
	}
	if err := created.ChangeCategories([]entity.CategoryID{other}); err != nil {
		t.Fatalf("changing categories: %v", err)
	}
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "Team lunch" {
		t.Errorf("expected updated title, got %q", found.Title)
	}
	if len(found.CategoryIDs) != 1 || found.CategoryIDs[0] != other {
		t.Errorf("expected relinked category %d, got %v", other, found.CategoryIDs)
	}
}

func TestTransactionRepository_ExistsByCategoryID(t *testing.T) {
	ctx := context.Background()
	userID := entity.UserID(1)

	db := openTestDB(t)
	repo, categoryID := seedExpenseSetup(t, db, userID)
	unused := seedDefaultCategory(t, db, "Dining", entity.CategoryTypeIDExpense)

	if _, err := repo.Create(ctx, newTransaction(t, userID, entity.TransactionTypeExpense,
		"Lunch", 450, "2025-01-01", []entity.CategoryID{categoryID})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	linked, err := repo.ExistsByCategoryID(ctx, categoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !linked {
		t.Error("expected the linked category to report usage")
	}

	free, err := repo.ExistsByCategoryID(ctx, unused)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Error("expected the unused category to report no usage")
	}
}

func mustDate(t *testing.T, value string) valueobject.TransactionDate {
	t.Helper()
	d, err := valueobject.ParseTransactionDate(value)
	if err != nil {
		t.Fatalf("parsing date %q: %v", value, err)
	}
	return d
}
