package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/finkeeper/finkeeper/internal/crypto"
)

// Config содержит конфигурацию сервера
type Config struct {
	ListenAddr   string
	DatabasePath string
	JWTSecret    []byte
	// TokenTTL <= 0 означает токены без срока действия
	TokenTTL   time.Duration
	BcryptCost int
}

// Load читает конфигурацию из .env файла (если есть) и переменных окружения.
// JWT_SECRET обязателен: дефолтного секрета нет намеренно.
func Load() (*Config, error) {
	// .env необязателен, в проде переменные приходят из окружения
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg := &Config{
		ListenAddr:   ":8080",
		DatabasePath: "finkeeper.db",
		JWTSecret:    []byte(secret),
		TokenTTL:     24 * time.Hour,
		BcryptCost:   crypto.DefaultCost,
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		n, err := strconv.Atoi(cost)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if n < 4 || n > 31 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", n)
		}
		cfg.BcryptCost = n
	}

	return cfg, nil
}
