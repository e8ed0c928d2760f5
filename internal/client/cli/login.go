package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/finkeeper/finkeeper/internal/client/storage"
	"github.com/finkeeper/finkeeper/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	authData := &storage.AuthData{
		Username:  username,
		UserID:    resp.UserID,
		Token:     resp.Token,
		ServerURL: c.apiClient.BaseURL(),
	}
	if resp.ExpiresIn > 0 {
		authData.ExpiresAt = time.Now().Unix() + resp.ExpiresIn
	}

	if err := c.authStorage.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("Username: %s\n", username)
	if resp.ExpiresIn > 0 {
		c.io.Printf("Token expires in: %d seconds\n", resp.ExpiresIn)
	}

	return nil
}
