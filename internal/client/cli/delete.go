package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing transaction id. Usage: finkeeper delete <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction id: %s", args[0])
	}

	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	if _, err := c.apiClient.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	c.io.Printf("Expense %d deleted.\n", id)

	return nil
}
