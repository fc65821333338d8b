// Package log configures the global zerolog logger used across tabprep and
// bridges the pkg/errors warning hook into structured log events.
package log

import (
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// Setup configures the global zerolog level and output format and registers
// the warning bridge so errors.Warn produces structured WARN events.
//
// level is one of "debug", "info", "warn", "error"; format is "pretty" or
// "json".
func Setup(level, format string) error {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return errors.NewValidationError("level", "must be one of debug, info, warn, error", level)
	}

	switch format {
	case "pretty":
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	case "json":
		// zerolog emits JSON by default.
	default:
		return errors.NewValidationError("format", "must be pretty or json", format)
	}

	errors.SetZerologWarnFunc(warnEvent)
	return nil
}

// warnEvent emits a warning through the global logger. Warnings that
// implement zerolog.LogObjectMarshaler keep their structured fields.
func warnEvent(warning error) {
	if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
		zlog.Warn().EmbedObject(obj).Msg(warning.Error())
		return
	}
	zlog.Warn().Err(warning).Msg("warning")
}
