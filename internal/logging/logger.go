// Package logging provides a small zerolog-based logger for the judge
// service, with correlation-ID-aware helpers for per-request logging.
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the global logger's behavior.
type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic.
	Level string
	// Format is "json" (default, production) or "console" (human-readable).
	Format string
}

// DefaultConfig returns the logger configuration used before Init is called.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json"}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(DefaultConfig())
}

// Init (re)configures the global logger. Safe to call multiple times; call
// it once at startup before serving any requests.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	var out zerolog.ConsoleWriter
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		log = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Info starts an info-level log event on the global logger.
func Info() *zerolog.Event { return Logger().Info() }

// Warn starts a warn-level log event on the global logger.
func Warn() *zerolog.Event { return Logger().Warn() }

// Error starts an error-level log event on the global logger.
func Error() *zerolog.Event { return Logger().Error() }

// Fatal starts a fatal-level log event on the global logger; emitting it
// terminates the process, matching zerolog's own semantics.
func Fatal() *zerolog.Event { return Logger().Fatal() }
