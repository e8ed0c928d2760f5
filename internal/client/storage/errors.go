package storage

import "errors"

var (
	// ErrAuthNotFound возвращается, когда сохраненной сессии нет
	ErrAuthNotFound = errors.New("auth data not found")
)
