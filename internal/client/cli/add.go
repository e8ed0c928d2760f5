package cli

import (
	"context"
	"fmt"

	"github.com/finkeeper/finkeeper/internal/models"
	"github.com/finkeeper/finkeeper/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== New Expense ===")
	c.io.Println()

	amountStr, err := c.io.ReadInput("Amount: ")
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}

	amount, err := models.ParseCents(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	description, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if description == "" {
		return fmt.Errorf("description cannot be empty")
	}

	category, err := c.io.ReadInput("Category: ")
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	resp, err := c.apiClient.CreateTransaction(ctx, api.CreateTransactionRequest{
		Amount:      &amount,
		Description: description,
		Category:    category,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Expense added, id %d\n", resp.TransactionID)

	return nil
}
