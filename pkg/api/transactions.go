package api

import (
	"time"

	"github.com/finkeeper/finkeeper/internal/models"
)

// Transaction представляет транзакцию в API ответе
type Transaction struct {
	ID          int64        `json:"id"`
	Amount      models.Cents `json:"amount"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Date        time.Time    `json:"date"`
}

// CreateTransactionRequest представляет запрос на создание транзакции.
// Amount — указатель, чтобы отличать отсутствующее поле от нуля.
type CreateTransactionRequest struct {
	Amount      *models.Cents `json:"amount"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
}

// CreateTransactionResponse представляет ответ на успешное создание
type CreateTransactionResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Message       string `json:"message"`
}

// ListTransactionsResponse представляет список транзакций пользователя
// вместе с суммой расходов
type ListTransactionsResponse struct {
	Transactions  []Transaction `json:"transactions"`
	TotalExpenses models.Cents  `json:"total_expenses"`
}

// DeleteTransactionResponse представляет ответ на успешное удаление
type DeleteTransactionResponse struct {
	Message string `json:"message"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
