package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/finkeeper/finkeeper/internal/models"
	"github.com/finkeeper/finkeeper/internal/server/storage"
	"github.com/finkeeper/finkeeper/pkg/api"
)

// TransactionHandler обрабатывает операции над транзакциями.
// Владелец всегда берется из контекста запроса (AuthMiddleware),
// клиентский user_id в теле запроса не принимается.
type TransactionHandler struct {
	logger  *slog.Logger
	storage storage.TransactionStorage
}

// NewTransactionHandler создает новый handler для транзакций
func NewTransactionHandler(logger *slog.Logger, txStorage storage.TransactionStorage) *TransactionHandler {
	return &TransactionHandler{
		logger:  logger,
		storage: txStorage,
	}
}

// List обрабатывает GET /api/v1/transactions
// Возвращает все транзакции пользователя и сумму расходов
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	transactions, err := h.storage.ListTransactions(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list transactions", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	total, err := h.storage.TotalExpenses(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sum transactions", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Пустой список сериализуется как [], не null
	apiTransactions := make([]api.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		apiTransactions = append(apiTransactions, api.Transaction{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Description: tx.Description,
			Category:    tx.Category,
			Date:        tx.Date,
		})
	}

	resp := api.ListTransactionsResponse{
		Transactions:  apiTransactions,
		TotalExpenses: total,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/transactions
// Создает транзакцию с датой сервера и владельцем из контекста
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Amount == nil {
		sendError(h.logger, w, "amount is required", http.StatusBadRequest)
		return
	}
	if req.Description == "" {
		sendError(h.logger, w, "description is required", http.StatusBadRequest)
		return
	}
	if req.Category == "" {
		sendError(h.logger, w, "category is required", http.StatusBadRequest)
		return
	}

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      *req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        time.Now(),
	}

	id, err := h.storage.CreateTransaction(ctx, tx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create transaction", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "transaction created",
		slog.String("user_id", userID),
		slog.Int64("transaction_id", id),
		slog.String("category", req.Category))

	resp := api.CreateTransactionResponse{
		TransactionID: id,
		Message:       "Transaction created successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/v1/transactions/{id}
// Удаляет транзакцию пользователя; чужой или несуществующий id — 404
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteTransaction(ctx, id, userID); err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			sendError(h.logger, w, "transaction not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete transaction", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "transaction deleted",
		slog.String("user_id", userID),
		slog.Int64("transaction_id", id))

	resp := api.DeleteTransactionResponse{
		Message: "Transaction deleted successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
