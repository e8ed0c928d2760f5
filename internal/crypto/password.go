package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost — work factor bcrypt по умолчанию.
// Можно поднять через конфигурацию без миграции: cost записан в самом хеше.
const DefaultCost = bcrypt.DefaultCost

// HashPassword хеширует пароль через bcrypt со свежей солью.
// Один и тот же пароль дает разные хеши при каждом вызове.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохраненного bcrypt хеша.
// Соль и cost bcrypt читает из самого хеша, сравнение constant-time.
// Битый формат хеша — это false, не panic.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
