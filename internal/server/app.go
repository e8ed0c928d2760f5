package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finkeeper/finkeeper/internal/server/config"
	"github.com/finkeeper/finkeeper/internal/server/handlers"
	"github.com/finkeeper/finkeeper/internal/server/middleware"
	"github.com/finkeeper/finkeeper/internal/server/storage"
)

// Лимит на попытки регистрации/логина с одного IP
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// App связывает handlers, middleware и http.Server
type App struct {
	logger *slog.Logger
	srv    *http.Server
}

// New собирает приложение: маршруты, цепочку middleware, http.Server.
// Хранилища передаются интерфейсами, чтобы тесты могли подставить свои.
func New(logger *slog.Logger, cfg *config.Config, users storage.UserStorage, transactions storage.TransactionStorage, version string) *App {
	jwtConfig := handlers.JWTConfig{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, users, jwtConfig, cfg.BcryptCost)
	txHandler := handlers.NewTransactionHandler(logger, transactions)
	healthHandler := handlers.NewHealthHandler(logger, version)

	authGate := middleware.AuthMiddleware(logger, jwtConfig)
	authRate := middleware.RateLimitMiddleware(authRateLimit, authRateWindow, logger)

	mux := http.NewServeMux()

	// Публичные маршруты; на auth дополнительно rate limit
	mux.Handle("POST /api/v1/auth/register", authRate(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", authRate(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Защищенные маршруты: сначала auth gate, потом handler
	mux.Handle("GET /api/v1/transactions", authGate(http.HandlerFunc(txHandler.List)))
	mux.Handle("POST /api/v1/transactions", authGate(http.HandlerFunc(txHandler.Create)))
	mux.Handle("DELETE /api/v1/transactions/{id}", authGate(http.HandlerFunc(txHandler.Delete)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingMiddleware(logger)(mux),
	)

	return &App{
		logger: logger,
		srv: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler возвращает корневой http.Handler (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

// Run запускает сервер и блокируется до отмены контекста
// или ошибки listener'а. Остановка graceful, с таймаутом.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return a.srv.Shutdown(shutdownCtx)
	}
}
