package models

import "time"

// Transaction представляет расходную операцию пользователя.
// Записи не редактируются: только создание и удаление.
type Transaction struct {
	ID          int64     `json:"id"`      // autoincrement id из sqlite
	UserID      string    `json:"user_id"` // владелец, не меняется
	Amount      Cents     `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"` // назначается сервером при создании
}
