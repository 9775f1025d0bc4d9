package middleware

import (
	"log/slog"

	"identity/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogMiddleware logs one line per request through slog-echo. It must be
// registered after the request ID middleware so the X-Request-Id header is set.
// Request and response bodies are never logged since they carry passwords and tokens.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	defaultLevel := slog.LevelInfo
	if !cfg.Env.Debug {
		defaultLevel = slog.LevelDebug
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     defaultLevel,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health"),
		},
	})
}
