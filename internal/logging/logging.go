// Package logging builds the zap logger used by the modelgen CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures New.
type Options struct {
	// Format is console (default) or json.
	Format string
	// Level is a zap level name. Empty means warn.
	Level string
	// Verbosity counts -v flags and lowers the level: 1 is info, 2+ debug.
	Verbosity int
	// Writer receives log lines. Defaults to stderr so generated code on
	// stdout stays clean.
	Writer io.Writer
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := resolveLevel(opts.Level, opts.Verbosity)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.Newf("logging: unknown format %q", opts.Format)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level)), nil
}

// VerbosityToLevel maps a -v count onto a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func resolveLevel(name string, verbosity int) (zapcore.Level, error) {
	level := zapcore.WarnLevel
	if name = strings.TrimSpace(name); name != "" {
		parsed, err := zapcore.ParseLevel(name)
		if err != nil {
			return level, errors.Wrapf(err, "logging: level %q", name)
		}
		level = parsed
	}
	if verbosity > 0 {
		if v := VerbosityToLevel(verbosity); v < level {
			level = v
		}
	}
	return level, nil
}
