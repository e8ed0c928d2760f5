package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"` // plaintext, хешируется на сервере и нигде не сохраняется
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID пользователя
	Message string `json:"message"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с токеном доступа
type LoginResponse struct {
	Token  string `json:"token"`   // JWT bearer token
	UserID string `json:"user_id"` // UUID пользователя
	// ExpiresIn — время жизни токена в секундах, 0 если срок не ограничен
	ExpiresIn int64 `json:"expires_in,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // текст HTTP статуса
	Message string `json:"message,omitempty"` // человекочитаемое сообщение
}
