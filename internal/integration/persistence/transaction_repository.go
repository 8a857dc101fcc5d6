// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. gorm's DeletedAt handling keeps soft-deleted rows out of every
// query automatically.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts the transaction row and its category link rows in one
// database transaction.
func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	transactionModel := model.TransactionFromEntity(tx)

	err := r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(transactionModel).Error; err != nil {
			return err
		}
		links := model.TransactionCategoryLinks(entity.TransactionID(transactionModel.ID), tx.CategoryIDs)
		return dbtx.Create(&links).Error
	})
	if err != nil {
		return nil, err
	}

	return transactionModel.ToEntity(tx.CategoryIDs)
}

// FindByID retrieves a transaction by its id with its category links in
// stored order.
func (r *transactionRepository) FindByID(ctx context.Context, id entity.TransactionID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	categoryIDs, err := r.FindCategoryIDsByTransactionID(ctx, id)
	if err != nil {
		return nil, err
	}
	return transactionModel.ToEntity(categoryIDs)
}

// FindCategoryIDsByTransactionID retrieves the linked category ids in their
// stored order.
func (r *transactionRepository) FindCategoryIDsByTransactionID(ctx context.Context, id entity.TransactionID) ([]entity.CategoryID, error) {
	var links []model.TransactionCategoryModel
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", id.Int64()).
		Order("position ASC").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	categoryIDs := make([]entity.CategoryID, len(links))
	for i, link := range links {
		categoryIDs[i] = entity.CategoryID(link.CategoryID)
	}
	return categoryIDs, nil
}

// FindByUserID retrieves all transactions of the user, newest first.
func (r *transactionRepository) FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("date DESC, id DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.attachCategoryLinks(ctx, transactionModels)
}

// FindByUserIDAndPeriod retrieves the user's transactions within the
// inclusive date range.
func (r *transactionRepository) FindByUserIDAndPeriod(ctx context.Context, userID entity.UserID, start, end valueobject.TransactionDate) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID.Int64(), start.Format(), end.Format()).
		Order("date ASC, id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.attachCategoryLinks(ctx, transactionModels)
}

// ListByUserID retrieves a page of transactions matching the query.
func (r *transactionRepository) ListByUserID(ctx context.Context, query adapter.TransactionListQuery) (*adapter.TransactionListResult, error) {
	base := r.filteredQuery(ctx, query)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	err := base.Session(&gorm.Session{}).
		Order(transactionOrderClause(query.Order)).
		Limit(query.Pagination.Limit()).
		Offset(query.Pagination.Offset()).
		Find(&transactionModels).Error
	if err != nil {
		return nil, err
	}

	items, err := r.attachCategoryLinks(ctx, transactionModels)
	if err != nil {
		return nil, err
	}

	return &adapter.TransactionListResult{
		Items: items,
		Total: total,
	}, nil
}

// GetTotals aggregates income/expense/net totals for the query's filter,
// ignoring its pagination.
func (r *transactionRepository) GetTotals(ctx context.Context, query adapter.TransactionListQuery) (*adapter.TransactionTotals, error) {
	type totalsRow struct {
		Type  string
		Total decimal.Decimal
	}

	var rows []totalsRow
	err := r.filteredQuery(ctx, query).
		Select("transactions.type AS type, COALESCE(SUM(transactions.amount), 0) AS total").
		Group("transactions.type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := &adapter.TransactionTotals{}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = row.Total
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = row.Total
		}
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)
	return totals, nil
}

// Update persists the entity's state and relinks its categories atomically.
func (r *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(tx)

	return r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Save(transactionModel).Error; err != nil {
			return err
		}
		if err := dbtx.Where("transaction_id = ?", tx.ID.Int64()).
			Delete(&model.TransactionCategoryModel{}).Error; err != nil {
			return err
		}
		links := model.TransactionCategoryLinks(tx.ID, tx.CategoryIDs)
		return dbtx.Create(&links).Error
	})
}

// Delete persists the entity's soft-delete marker.
func (r *transactionRepository) Delete(ctx context.Context, tx *entity.Transaction) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", tx.ID.Int64())
	return result.Error
}

// ExistsByCategoryID reports whether any live transaction links the category.
func (r *transactionRepository) ExistsByCategoryID(ctx context.Context, id entity.CategoryID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN transaction_categories ON transaction_categories.transaction_id = transactions.id").
		Where("transaction_categories.category_id = ?", id.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// filteredQuery applies the query's filter, never its pagination.
func (r *transactionRepository) filteredQuery(ctx context.Context, query adapter.TransactionListQuery) *gorm.DB {
	db := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("transactions.user_id = ?", query.UserID.Int64())

	if query.StartDate != nil {
		db = db.Where("transactions.date >= ?", query.StartDate.Format())
	}
	if query.EndDate != nil {
		db = db.Where("transactions.date <= ?", query.EndDate.Format())
	}
	if query.Type != nil {
		db = db.Where("transactions.type = ?", string(*query.Type))
	}
	if len(query.CategoryIDs) > 0 {
		rawIDs := make([]int64, len(query.CategoryIDs))
		for i, id := range query.CategoryIDs {
			rawIDs[i] = id.Int64()
		}
		// A subquery instead of a join: a transaction linked to several of
		// the filtered categories must still appear (and be summed) once.
		db = db.Where("transactions.id IN (?)",
			r.db.Model(&model.TransactionCategoryModel{}).
				Select("transaction_id").
				Where("category_id IN ?", rawIDs))
	}

	return db
}

// attachCategoryLinks loads the link rows for a page of transactions in one
// query and converts the models to entities.
func (r *transactionRepository) attachCategoryLinks(ctx context.Context, transactionModels []model.TransactionModel) ([]*entity.Transaction, error) {
	if len(transactionModels) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(transactionModels))
	for i := range transactionModels {
		ids[i] = transactionModels[i].ID
	}

	var links []model.TransactionCategoryModel
	err := r.db.WithContext(ctx).
		Where("transaction_id IN ?", ids).
		Order("transaction_id ASC, position ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	linksByTransaction := make(map[int64][]entity.CategoryID, len(transactionModels))
	for _, link := range links {
		linksByTransaction[link.TransactionID] = append(
			linksByTransaction[link.TransactionID],
			entity.CategoryID(link.CategoryID),
		)
	}

	items := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		item, err := transactionModels[i].ToEntity(linksByTransaction[transactionModels[i].ID])
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func transactionOrderClause(order valueobject.TransactionListOrder) string {
	keys := order.Keys()
	if len(keys) == 0 {
		return "transactions.date DESC, transactions.id DESC"
	}

	clause := ""
	for i, key := range keys {
		if i > 0 {
			clause += ", "
		}
		direction := "ASC"
		if key.Direction == valueobject.SortDesc {
			direction = "DESC"
		}
		clause += fmt.Sprintf("transactions.%s %s", key.Field, direction)
	}
	return clause
}
