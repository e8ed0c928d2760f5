package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeeper/finkeeper/internal/models"
	"github.com/finkeeper/finkeeper/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "testuser", req.Username)
		assert.Equal(t, "test@example.com", req.Email)
		assert.NotEmpty(t, req.Password)

		w.WriteHeader(http.StatusCreated)
		resp := api.RegisterResponse{
			UserID:  "user-123",
			Message: "Registration successful",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx := context.Background()
	resp, err := client.Register(ctx, api.RegisterRequest{
		FullName: "Test User",
		Email:    "test@example.com",
		Username: "testuser",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, "Registration successful", resp.Message)
}

// TestClient_Register_Error проверяет обработку ошибок сервера
func TestClient_Register_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "Conflict",
			Message: "username or email already taken",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "testuser",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "username or email already taken")
}

// TestClient_Login проверяет успешный логин
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		_ = json.NewEncoder(w).Encode(api.LoginResponse{
			Token:     "jwt-token",
			UserID:    "user-123",
			ExpiresIn: 86400,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Username: "testuser",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
}

// TestClient_ListTransactions проверяет список транзакций и заголовок Authorization
func TestClient_ListTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/transactions", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(api.ListTransactionsResponse{
			Transactions: []api.Transaction{
				{ID: 1, Amount: models.Cents(2000), Description: "lunch", Category: "food"},
				{ID: 2, Amount: models.Cents(5000), Description: "gas", Category: "transport"},
			},
			TotalExpenses: models.Cents(7000),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("jwt-token")

	resp, err := client.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "lunch", resp.Transactions[0].Description)
	assert.Equal(t, models.Cents(7000), resp.TotalExpenses)
}

// TestClient_CreateTransaction проверяет создание транзакции
func TestClient_CreateTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/transactions", r.URL.Path)

		var req api.CreateTransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Amount)
		assert.Equal(t, models.Cents(2000), *req.Amount)
		assert.Equal(t, "lunch", req.Description)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.CreateTransactionResponse{
			TransactionID: 42,
			Message:       "Transaction created",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("jwt-token")

	amount := models.Cents(2000)
	resp, err := client.CreateTransaction(context.Background(), api.CreateTransactionRequest{
		Amount:      &amount,
		Description: "lunch",
		Category:    "food",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.TransactionID)
}

// TestClient_DeleteTransaction проверяет удаление и маршрут с id
func TestClient_DeleteTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v1/transactions/42", r.URL.Path)

		_ = json.NewEncoder(w).Encode(api.DeleteTransactionResponse{
			Message: "Transaction deleted",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("jwt-token")

	resp, err := client.DeleteTransaction(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "Transaction deleted", resp.Message)
}

// TestClient_DeleteTransaction_NotFound проверяет маппинг 404
func TestClient_DeleteTransaction_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "Not Found",
			Message: "transaction not found",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("jwt-token")

	_, err := client.DeleteTransaction(context.Background(), 99)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "transaction not found")
}

// TestClient_NoToken проверяет, что без токена заголовок не посылается
func TestClient_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.LoginResponse{Token: "t", UserID: "u"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), api.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
}
