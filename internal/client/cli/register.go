package cli

import (
	"context"
	"fmt"

	"github.com/finkeeper/finkeeper/internal/validation"
	"github.com/finkeeper/finkeeper/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	fullName, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	// Локальная валидация до похода на сервер
	if err := validation.ValidateFullName(fullName); err != nil {
		return err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registering user...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		FullName: fullName,
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("User ID: %s\n", resp.UserID)
	c.io.Println()
	c.io.Println("Please run 'finkeeper login' to start tracking expenses.")

	return nil
}
