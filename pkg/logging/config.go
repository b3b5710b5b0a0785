package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/panelkit/pkg/constants"
)

// Config describes where and how log lines are written.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	Level string

	// Format is console, json, or auto (console on a terminal).
	Format string

	// Output is stderr, stdout, discard, or a file path to append to.
	Output string

	// TimeFormat names a layout (kitchen, rfc3339, unix) or is a Go layout.
	TimeFormat string

	// NoColor disables colors in console output.
	NoColor bool

	// AddCaller adds file:line to every entry.
	AddCaller bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// ConfigFromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT, LOG_TIME_FORMAT,
// LOG_CALLER and NO_COLOR on top of DefaultConfig. DEBUG=1 without a
// LOG_LEVEL selects debug.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_TIME_FORMAT"); v != "" {
		cfg.TimeFormat = v
	}
	cfg.AddCaller = os.Getenv("LOG_CALLER") == "true"
	return cfg
}

// NewLoggerFromConfig builds a logger from cfg. A nil cfg uses DefaultConfig.
// The zerolog global level is lowered to the logger's level when needed so
// trace entries are not dropped.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	logger := zerolog.New(writerFor(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Configure replaces the default logger with one built from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// levels maps the accepted level names, including aliases, to zerolog levels.
var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"disabled": zerolog.Disabled,
	"off":      zerolog.Disabled,
	"none":     zerolog.Disabled,
}

// ParseLevel returns the level named by s, or info when s is unknown.
func ParseLevel(s string) zerolog.Level {
	if level, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level
	}
	return zerolog.InfoLevel
}

var timeFormats = map[string]string{
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"unix":        "",
}

// timeFormat resolves a layout name. Anything that looks like a Go layout is
// used as is.
func timeFormat(name string) string {
	if layout, ok := timeFormats[strings.ToLower(name)]; ok {
		return layout
	}
	if strings.Contains(name, "2006") || strings.Contains(name, "15:04") {
		return name
	}
	return time.Kitchen
}

// writerFor opens cfg.Output and wraps it in a console writer when the
// format asks for one.
func writerFor(cfg *Config) io.Writer {
	out := openOutput(cfg.Output)

	console := false
	switch strings.ToLower(cfg.Format) {
	case "console", "pretty":
		console = true
	case "json":
	default:
		console = isTerminal(out)
	}
	if !console {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// openOutput returns the named stream, or the file at name opened for
// append. Unopenable files fall back to stderr.
func openOutput(name string) io.Writer {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}

	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions) // #nosec G304 -- path is user configuration
	if err != nil {
		return os.Stderr
	}
	return f
}
