package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/finkeeper/finkeeper/internal/server/handlers"
	"github.com/finkeeper/finkeeper/pkg/api"
)

// AuthMiddleware создает middleware для проверки bearer токена.
// Отсутствующий или неразобранный заголовок — 401, предъявленный но
// невалидный токен — 403. Различие намеренное: клиент по 401 понимает,
// что нужно логиниться, по 403 — что сессия испорчена или истекла.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				writeAuthError(logger, w, http.StatusUnauthorized, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("invalid Authorization header format")
				writeAuthError(logger, w, http.StatusUnauthorized, "invalid token format")
				return
			}

			claims, err := handlers.VerifyToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				writeAuthError(logger, w, http.StatusForbidden, "invalid or expired token")
				return
			}

			// Привязываем identity к контексту запроса
			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)

			logger.Debug("user authenticated", "user_id", claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(logger *slog.Logger, w http.ResponseWriter, statusCode int, message string) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode auth error", "error", err)
	}
}
