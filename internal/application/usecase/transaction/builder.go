// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// TransactionCategoryDTO is the category projection embedded in transaction
// responses.
type TransactionCategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransactionDTO is the response shape of a single transaction.
type TransactionDTO struct {
	ID         int64                    `json:"id"`
	Type       string                   `json:"type"`
	Title      string                   `json:"title"`
	Amount     int64                    `json:"amount"`
	Currency   string                   `json:"currency"`
	Date       string                   `json:"date"`
	Categories []TransactionCategoryDTO `json:"categories"`
	Memo       *string                  `json:"memo"`
	CreatedAt  string                   `json:"createdAt"`
	UpdatedAt  string                   `json:"updatedAt"`
}

// ListPaginationDTO is the pagination block of list responses.
type ListPaginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// BuildTransactionDTO shapes one transaction plus its resolved categories
// into a response DTO. Category ids with no entry in the lookup map are
// dropped silently; a partial lookup never fails the build.
func BuildTransactionDTO(tx *entity.Transaction, categories map[entity.CategoryID]*entity.Category) TransactionDTO {
	resolved := make([]TransactionCategoryDTO, 0, len(tx.CategoryIDs))
	for _, id := range tx.CategoryIDs {
		category, ok := categories[id]
		if !ok || category == nil {
			continue
		}
		resolved = append(resolved, TransactionCategoryDTO{
			ID:   category.ID.Int64(),
			Name: category.Name,
			Type: string(category.Type),
		})
	}

	var memo *string
	if tx.Memo != "" {
		m := tx.Memo
		memo = &m
	}

	return TransactionDTO{
		ID:         tx.ID.Int64(),
		Type:       string(tx.Type),
		Title:      tx.Title,
		Amount:     tx.Amount.Int64(),
		Currency:   tx.Amount.Currency(),
		Date:       tx.Date.Format(),
		Categories: resolved,
		Memo:       memo,
		CreatedAt:  tx.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  tx.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// BuildTransactionList shapes a page of transactions and computes the
// pagination block. totalPages is zero when the filter matched nothing.
func BuildTransactionList(
	items []*entity.Transaction,
	categories map[entity.CategoryID]*entity.Category,
	page, limit int,
	total int64,
) ([]TransactionDTO, ListPaginationDTO) {
	dtos := make([]TransactionDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, BuildTransactionDTO(item, categories))
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return dtos, ListPaginationDTO{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
