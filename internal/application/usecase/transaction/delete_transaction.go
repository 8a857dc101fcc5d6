// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        entity.UserID
	TransactionID entity.TransactionID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Deleted bool
}

// DeleteTransactionUseCase handles logical transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the soft delete.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	current, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedDeleteTransaction,
			"unexpected failure loading transaction",
			err,
		)
	}
	if current == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if !current.IsOwnedBy(input.UserID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotOwner,
			"transaction belongs to another user",
			domainerror.ErrNotOwner,
		)
	}

	current.Delete()

	if err := uc.transactionRepo.Delete(ctx, current); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedDeleteTransaction,
			"unexpected failure deleting transaction",
			err,
		)
	}

	return &DeleteTransactionOutput{Deleted: true}, nil
}
