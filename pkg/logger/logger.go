package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	charm "github.com/charmbracelet/log"

	"github.com/cloudposse/tokenicon/pkg/schema"
	"github.com/cloudposse/tokenicon/pkg/ui/theme"
)

// ErrInvalidLogLevel is returned for log level names outside the supported set.
var ErrInvalidLogLevel = errors.New("invalid log level")

type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Charm levels re-exported so callers need a single import.
const (
	TraceLevel = theme.TraceLevel
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	FatalLevel = charm.FatalLevel
	offLevel   = charm.FatalLevel + 1
)

// Logger wraps a charm logger and adds the Trace level.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charm logger.
func NewLogger(l *charm.Logger) *Logger {
	return &Logger{Logger: l}
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewLogger(charm.New(os.Stderr))
}

// NewLoggerFromConfig creates a Logger configured from the logs section.
func NewLoggerFromConfig(cfg schema.Logs) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out, err := openOutput(cfg.File)
	if err != nil {
		return nil, err
	}

	l := charm.NewWithOptions(out, charm.Options{ReportTimestamp: false})
	l.SetLevel(level.ToCharmLevel())
	l.SetStyles(theme.GetLogStyles())

	return NewLogger(l), nil
}

func openOutput(file string) (io.Writer, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, nil
	case "/dev/stdout":
		return os.Stdout, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", file, err)
	}
	return f, nil
}

// ParseLogLevel parses a configured level name. Empty input means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelOff, LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning:
		return LogLevel(logLevel), nil
	default:
		return "", fmt.Errorf("%w: '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", ErrInvalidLogLevel, logLevel)
	}
}

// ToCharmLevel maps a LogLevel onto the charm level scale.
func (l LogLevel) ToCharmLevel() charm.Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return offLevel
	default:
		return InfoLevel
	}
}

// Trace logs at trace level.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// Tracef logs a formatted message at trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Log(TraceLevel, fmt.Sprintf(format, args...))
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return NewLogger(l.Logger.With(keyvals...))
}

// GetLevelString returns the lower-case name of the current level.
func (l *Logger) GetLevelString() string {
	if l.GetLevel() == TraceLevel {
		return "trace"
	}
	return l.GetLevel().String()
}
