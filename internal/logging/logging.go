// Package logging configures the process-wide zerolog logger.
//
// Everything goes to stderr: stdout carries the MCP stdio transport and
// must stay clean.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. The level comes from UNOMI_LOG_LEVEL
// and defaults to info; an unparseable value falls back to info rather than
// failing startup.
func Setup() {
	zerolog.SetGlobalLevel(parseLevel(os.Getenv("UNOMI_LOG_LEVEL")))
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
