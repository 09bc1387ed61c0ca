// SPDX-License-Identifier: MIT

// Package logging builds the logr.Logger threaded through the optimizer.
//
// The sink is zap (JSON or console encoding) adapted with zapr. Verbosity
// follows logr: V(0) is info, V(DEBUG) debug, V(TRACE) per-attempt detail.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Output encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalidLevel and ErrInvalidFormat report unusable logger settings.
var (
	ErrInvalidLevel  = errors.New("logging: invalid level")
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// New returns a logger writing to stderr. See NewWithWriter.
func New(level, format string) (logr.Logger, error) {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter returns a logger writing to w.
//
// level is one of trace, debug, info, warn, error (empty means info).
// format is json or console (empty means console).
func NewWithWriter(w io.Writer, level, format string) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	enc, err := encoder(format)
	if err != nil {
		return logr.Discard(), err
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zapr.NewLogger(zap.New(core)), nil
}

// ParseLevel maps a level name to a zap level. "trace" enables V(TRACE).
func ParseLevel(level string) (zapcore.Level, error) {
	switch s := strings.ToLower(strings.TrimSpace(level)); s {
	case "":
		return zapcore.InfoLevel, nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	default:
		lvl, err := zapcore.ParseLevel(s)
		if err != nil {
			return zapcore.InfoLevel, fmt.Errorf("%q: %w", level, ErrInvalidLevel)
		}

		return lvl, nil
	}
}

func encoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder

		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder

		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrInvalidFormat)
	}
}

// Discard returns a logger that drops everything. Used as the default for
// library callers and in tests.
func Discard() logr.Logger { return logr.Discard() }
