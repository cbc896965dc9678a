package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON logger writing to stdout as the process default and
// returns its handler so callers can later fan it out with other sinks.
// LOG_LEVEL picks the minimum level; anything unrecognized means info.
func Setup() slog.Handler {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
	slog.SetDefault(slog.New(handler))
	return handler
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
