package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"` // UUID пользователя
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`    // уникальный email
	Username     string    `json:"username"` // уникальный username
	PasswordHash string    `json:"-"`        // bcrypt хеш, никогда не сериализуется
	CreatedAt    time.Time `json:"created_at"`
}
