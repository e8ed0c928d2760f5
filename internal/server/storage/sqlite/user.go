package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/finkeeper/finkeeper/internal/models"
	"github.com/finkeeper/finkeeper/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, full_name, email, username, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		// username и email оба уникальны, ловим оба constraint
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`

	user := &models.User{}

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
