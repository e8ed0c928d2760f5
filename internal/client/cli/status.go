package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finkeeper/finkeeper/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	auth, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: not authenticated")
			c.io.Println("Run 'finkeeper login' to start a session.")
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	c.io.Println("Status: authenticated")
	c.io.Printf("Username: %s\n", auth.Username)
	c.io.Printf("User ID:  %s\n", auth.UserID)
	c.io.Printf("Server:   %s\n", auth.ServerURL)

	switch {
	case auth.ExpiresAt == 0:
		c.io.Println("Token:    no expiry")
	case time.Now().Unix() >= auth.ExpiresAt:
		c.io.Println("Token:    expired, run 'finkeeper login' again")
	default:
		c.io.Printf("Token:    valid until %s\n", time.Unix(auth.ExpiresAt, 0).Format(time.RFC3339))
	}

	return nil
}
