package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/beka-birhanu/vinom-mapgen/config"
)

// Level is the minimum severity a Logger writes.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var (
	ErrEmptyTag     = errors.New("logger tag must not be empty")
	ErrNilWriter    = errors.New("logger writer must not be nil")
	ErrUnknownLevel = errors.New("unknown log level")
)

// ParseLevel maps "debug", "info", "warning" and "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Logger writes lines shaped "[TAG] [LEVEL] message" with a coloured tag.
type Logger struct {
	tag   string
	color string
	level Level
	out   *log.Logger
	mu    sync.Mutex
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the minimum level written. The default is LevelInfo.
func WithLevel(l Level) Option {
	return func(lg *Logger) {
		lg.level = l
	}
}

// WithoutColor drops the ANSI colour codes, for writers that are not terminals.
func WithoutColor() Option {
	return func(lg *Logger) {
		lg.color = ""
	}
}

// New creates a Logger that writes to w.
func New(tag, color string, w io.Writer, options ...Option) (*Logger, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, ErrEmptyTag
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	lg := &Logger{
		tag:   tag,
		color: color,
		level: LevelInfo,
		out:   log.New(w, "", log.LstdFlags),
	}
	for _, opt := range options {
		opt(lg)
	}
	return lg, nil
}

func (l *Logger) Debug(msg string) {
	l.write(LevelDebug, "DEBUG", config.LogInfoColor, msg)
}

func (l *Logger) Info(msg string) {
	l.write(LevelInfo, "INFO", config.LogInfoColor, msg)
}

func (l *Logger) Warning(msg string) {
	l.write(LevelWarning, "WARNING", config.LogWarningColor, msg)
}

func (l *Logger) Error(msg string) {
	l.write(LevelError, "ERROR", config.LogErrorColor, msg)
}

func (l *Logger) write(level Level, name, levelColor, msg string) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.tag, name, msg)
		return
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.tag, config.LogColorReset,
		levelColor, name, config.LogColorReset,
		msg)
}
