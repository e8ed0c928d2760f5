package storage

import (
	"context"
)

// AuthStorage defines interface for storing authentication data on client.
// JWT токен хранится как есть: он и так подписан сервером, а доступ к
// локальной базе ограничен правами файла.
type AuthStorage interface {
	// SaveAuth stores authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data.
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents authentication information in storage
type AuthData struct {
	Username  string `json:"username"`
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ServerURL string `json:"server_url"`
	// ExpiresAt == 0 означает токен без срока действия
	ExpiresAt int64 `json:"expires_at"`
}
