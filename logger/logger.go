// Package logger provides the named, colored loggers used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/rs/zerolog"
)

var (
	ErrNilWriter   = errors.New("log writer is nil")
	ErrEmptyPrefix = errors.New("log prefix is empty")
)

// Logger writes leveled, human-readable lines tagged with a component prefix.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing to w. Every line carries prefix, drawn in
// color unless color is empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}

	tag := "[" + prefix + "]"
	if color != "" {
		tag = color + tag + config.ColorReset
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    color == "",
		TimeFormat: time.DateTime,
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return tag
			}
			return fmt.Sprintf("%s %v", tag, i)
		},
	}

	return &Logger{zl: zerolog.New(out).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }
