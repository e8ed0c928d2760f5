package handlers

import (
	"log/slog"
	"os"
)

// testLogger возвращает logger, который молчит ниже уровня ERROR
func testLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
