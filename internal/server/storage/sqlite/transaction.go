package sqlite

import (
	"context"
	"fmt"

	"github.com/finkeeper/finkeeper/internal/models"
	"github.com/finkeeper/finkeeper/internal/server/storage"
)

// CreateTransaction persists a new transaction and returns its id
func (s *Storage) CreateTransaction(ctx context.Context, tx *models.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (user_id, amount, description, category, date)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		tx.UserID,
		int64(tx.Amount),
		tx.Description,
		tx.Category,
		tx.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction id: %w", err)
	}

	return id, nil
}

// ListTransactions returns all transactions of the user, newest first
func (s *Storage) ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, description, category, date
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx := &models.Transaction{}
		var amount int64

		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&amount,
			&tx.Description,
			&tx.Category,
			&tx.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Amount = models.Cents(amount)
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// TotalExpenses returns the exact sum of the user's transaction amounts.
// Суммируются целые центы, ошибок плавающей точки нет.
func (s *Storage) TotalExpenses(ctx context.Context, userID string) (models.Cents, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ?`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return models.Cents(total), nil
}

// DeleteTransaction removes the transaction owned by userID.
// Проверка владельца и существования объединены в одном WHERE:
// чужая запись неотличима от несуществующей.
func (s *Storage) DeleteTransaction(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM transactions WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTransactionNotFound
	}

	return nil
}
