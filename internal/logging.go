package internal

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger. Structured JSON output
// is kept when ROKI_LOG_FORMAT=JSON; otherwise a console writer is used.
// Logs go to stderr so stdout stays clean for the resolved documents.
func InitLogging(debug bool) {
	if os.Getenv("ROKI_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
