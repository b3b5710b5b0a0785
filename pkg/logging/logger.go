// Package logging provides structured logging for panelkit using zerolog.
// Loads carry their request id, operation and server id in the context
// logger, so every line about one load can be correlated:
//
//	ctx := logging.WithLogger(context.Background(), &logger)
//	ctx = logging.WithOperation(ctx, "load_server_detail")
//	logging.FromContext(ctx).Debug().Int("status", 200).Msg("Resource loaded")
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is used when a context carries no logger.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(ConfigFromEnv())
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, including zerolog's log.Logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts an error event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
