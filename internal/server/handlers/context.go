package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// UserIDKey ключ для хранения user_id в контексте запроса.
// Значение устанавливает только AuthMiddleware — клиентский ввод
// никогда не попадает сюда напрямую.
const UserIDKey contextKey = "user_id"

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
