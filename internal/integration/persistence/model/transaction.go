// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
// The date is stored as its canonical "YYYY-MM-DD" string so comparisons
// and ordering work lexicographically.
type TransactionModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null;index"`
	Type      string          `gorm:"type:varchar(10);not null;index"`
	Title     string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	Currency  string          `gorm:"type:varchar(3);not null"`
	Date      string          `gorm:"type:varchar(10);not null;index"`
	Memo      string          `gorm:"type:varchar(500)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`

	User       *UserModel                 `gorm:"foreignKey:UserID;references:ID"`
	Categories []TransactionCategoryModel `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel plus its ordered category link rows
// to a domain Transaction entity.
func (m *TransactionModel) ToEntity(categoryIDs []entity.CategoryID) (*entity.Transaction, error) {
	amount, err := valueobject.NewMoney(m.Amount, m.Currency)
	if err != nil {
		return nil, err
	}
	date, err := valueobject.ParseTransactionDate(m.Date)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return entity.ReconstructTransaction(
		entity.TransactionID(m.ID),
		entity.UserID(m.UserID),
		entity.TransactionType(m.Type),
		m.Title,
		amount,
		date,
		categoryIDs,
		m.Memo,
		m.CreatedAt,
		m.UpdatedAt,
		deletedAt,
	), nil
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction
// entity. Category links are stored separately.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if tx.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *tx.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:        tx.ID.Int64(),
		UserID:    tx.UserID.Int64(),
		Type:      string(tx.Type),
		Title:     tx.Title,
		Amount:    tx.Amount.Amount(),
		Currency:  tx.Amount.Currency(),
		Date:      tx.Date.Format(),
		Memo:      tx.Memo,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// TransactionCategoryModel represents the transaction_categories link table.
// Position preserves the order categories were supplied in; position 0 is
// the primary category.
type TransactionCategoryModel struct {
	TransactionID int64 `gorm:"primaryKey"`
	CategoryID    int64 `gorm:"primaryKey;index"`
	Position      int   `gorm:"not null;default:0"`
}

// TableName returns the table name for the TransactionCategoryModel.
func (TransactionCategoryModel) TableName() string {
	return "transaction_categories"
}

// TransactionCategoryLinks builds the link rows for a transaction's category
// id list, preserving order.
func TransactionCategoryLinks(transactionID entity.TransactionID, categoryIDs []entity.CategoryID) []TransactionCategoryModel {
	links := make([]TransactionCategoryModel, len(categoryIDs))
	for i, id := range categoryIDs {
		links[i] = TransactionCategoryModel{
			TransactionID: transactionID.Int64(),
			CategoryID:    id.Int64(),
			Position:      i,
		}
	}
	return links
}
