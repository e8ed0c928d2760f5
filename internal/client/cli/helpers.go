package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finkeeper/finkeeper/internal/client/storage"
)

// requireAuth читает сохраненную сессию, проверяет срок действия токена
// и устанавливает его в API клиент
func (c *Cli) requireAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated, please run 'finkeeper login' first")
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if auth.ExpiresAt > 0 && time.Now().Unix() >= auth.ExpiresAt {
		return nil, fmt.Errorf("session expired, please run 'finkeeper login' again")
	}

	c.apiClient.SetToken(auth.Token)

	return auth, nil
}
