package eventcore

import (
	"log/slog"
	"os"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvMultiTouch = "EVENTCORE_MULTI_TOUCH"
	EnvDebug      = "EVENTCORE_DEBUG"
	EnvDisabled   = "EVENTCORE_DISABLED"
)

// Config holds Manager options. The zero value is a usable single-touch,
// enabled manager logging warnings to stderr.
type Config struct {
	// MultiTouch lets several touches be claimed concurrently. When false, a
	// claimed touch blocks new touch-starts until it ends.
	MultiTouch bool
	// Disabled starts the manager with dispatching turned off.
	Disabled bool
	// Debug lowers the default log level to Debug and logs per-dispatch timing.
	Debug bool
	// Logger receives diagnostics. Nil uses a text handler on stderr.
	Logger *slog.Logger
}

// ConfigFromEnv builds a Config from EVENTCORE_* environment variables.
// Unset or unparsable values keep their zero defaults.
func ConfigFromEnv() Config {
	return Config{
		MultiTouch: getEnvAsBoolOrDefault(EnvMultiTouch, false),
		Debug:      getEnvAsBoolOrDefault(EnvDebug, false),
		Disabled:   getEnvAsBoolOrDefault(EnvDisabled, false),
	}
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	level := slog.LevelWarn
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
