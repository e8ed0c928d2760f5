package handlers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims представляет JWT claims для нашего приложения.
// Токен связывает только user id — ролей и scope в этой системе нет.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret []byte
	// TokenTTL <= 0 выпускает токены без exp claim (бессрочные)
	TokenTTL time.Duration
}

// IssueToken создает подписанный JWT для пользователя.
// Возвращает токен и срок его жизни в секундах (0 для бессрочного).
// Верификация stateless: на сервере токен нигде не сохраняется.
func IssueToken(cfg JWTConfig, userID string) (string, int64, error) {
	now := time.Now()

	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "finkeeper",
		},
	}

	var expiresIn int64
	if cfg.TokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(cfg.TokenTTL))
		expiresIn = int64(cfg.TokenTTL.Seconds())
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresIn, nil
}

// VerifyToken валидирует подпись и срок действия токена
// и возвращает claims
func VerifyToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
