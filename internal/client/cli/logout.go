package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/finkeeper/finkeeper/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	err := c.authStorage.DeleteAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	c.io.Println("Logged out, local session removed.")
	return nil
}
