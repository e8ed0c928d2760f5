package storage

import (
	"context"

	"github.com/finkeeper/finkeeper/internal/models"
)

// TransactionStorage defines interface for transaction persistence.
// Every read and every mutation is scoped by the owning user id.
type TransactionStorage interface {
	// CreateTransaction persists a new transaction and returns its id
	CreateTransaction(ctx context.Context, tx *models.Transaction) (int64, error)

	// ListTransactions returns all transactions of the user,
	// newest first (date DESC, id DESC)
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)

	// TotalExpenses returns the exact sum of the user's transaction
	// amounts, 0 when the user has none
	TotalExpenses(ctx context.Context, userID string) (models.Cents, error)

	// DeleteTransaction removes the transaction with the given id owned
	// by userID. Returns ErrTransactionNotFound when the id doesn't exist
	// or belongs to another user.
	DeleteTransaction(ctx context.Context, id int64, userID string) error
}
