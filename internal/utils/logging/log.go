// Package logging wraps zerolog with the leveled print helpers used across
// tubefetch.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger writes human-readable output to stderr, keeping stdout free for the
// sub-operations that print results (dry-run commands, id matches, scripts).
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Setup applies the resolved verbosity to the global log level.
func Setup(debugLevel int, quiet bool) {
	switch {
	case debugLevel >= 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case debugLevel == 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// E logs an error-level message.
func E(format string, args ...any) {
	Logger.Error().Msgf(format, args...)
}

// W logs a warning-level message.
func W(format string, args ...any) {
	Logger.Warn().Msgf(format, args...)
}

// I logs an info-level message.
func I(format string, args ...any) {
	Logger.Info().Msgf(format, args...)
}

// D logs a message at debug level 1, or trace for higher levels.
func D(l int, format string, args ...any) {
	if l >= 2 {
		Logger.Trace().Msgf(format, args...)
		return
	}
	Logger.Debug().Msgf(format, args...)
}
