package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeeper/finkeeper/internal/client/storage"
)

// создаем тестовое BoltDB хранилище с auth bucket
func createTestAuthStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "auth_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	auth := &storage.AuthData{
		Username:  "testuser",
		UserID:    "user-id-123",
		Token:     "jwt-token",
		ServerURL: "http://localhost:8080",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	// GetAuth до сохранения выдаст ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Сохраняем auth
	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	// Получаем auth и сравниваем
	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, auth.Username, got.Username)
	assert.Equal(t, auth.UserID, got.UserID)
	assert.Equal(t, auth.Token, got.Token)
	assert.Equal(t, auth.ServerURL, got.ServerURL)
	assert.Equal(t, auth.ExpiresAt, got.ExpiresAt)

	// IsAuthenticated должна вернуть true (токен не просрочен)
	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authOk)

	// Удаляем auth
	err = store.DeleteAuth(ctx)
	require.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторное удаление — ErrAuthNotFound
	err = store.DeleteAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_IsAuthenticated_Expired(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	auth := &storage.AuthData{
		Username:  "testuser",
		Token:     "jwt-token",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}
	require.NoError(t, store.SaveAuth(ctx, auth))

	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)
}

func TestStorage_IsAuthenticated_NoExpiry(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	// ExpiresAt == 0 — бессрочный токен
	auth := &storage.AuthData{
		Username: "testuser",
		Token:    "jwt-token",
	}
	require.NoError(t, store.SaveAuth(ctx, auth))

	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authOk)
}

func TestStorage_IsAuthenticated_NoAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestAuthStorage(t)

	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)
}
