package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== Expenses ===")
	c.io.Println()

	resp, err := c.apiClient.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(resp.Transactions) == 0 {
		c.io.Println("No expenses recorded yet.")
		c.io.Println()
		c.io.Println("Use 'finkeeper add' to record your first expense.")
		return nil
	}

	for _, tx := range resp.Transactions {
		c.io.Printf("%d. %s: %s\n", tx.ID, tx.Description, tx.Amount.String())
		c.io.Printf("   Category: %s\n", tx.Category)
		c.io.Printf("   Date:     %s\n", tx.Date.Format("2006-01-02 15:04"))
		c.io.Println()
	}

	c.io.Printf("Total expenses: %s\n", resp.TotalExpenses.String())

	return nil
}
