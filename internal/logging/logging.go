package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger for CLI output.
func Setup(out io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// MaskToken shortens an access token for log output. Tokens never appear
// in full in any log line.
func MaskToken(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "<empty>"
	}
	if len(trimmed) <= 8 {
		return "****"
	}

	return trimmed[:4] + "..." + trimmed[len(trimmed)-4:]
}
