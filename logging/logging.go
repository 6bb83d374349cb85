// Package logging builds the tool's zap logger.
//
// Every run appends JSON lines to <ApplicationRoot>/logs/<YYYY-MM-DD>.log.
// When stderr is a terminal the same entries are also printed there in
// console form.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// DirName is the log directory inside the application folder.
const DirName = "logs"

// Options configures New.
type Options struct {
	Fs afero.Fs
	// Dir is the log directory. Empty disables the file sink.
	Dir string
	// Level is a zap level name; empty means info.
	Level string
	// Console mirrors entries to stderr.
	Console bool
	Now     func() time.Time
}

// FileName returns the daily log file name for t.
func FileName(t time.Time) string {
	return t.Format("2006-01-02") + ".log"
}

// StderrIsTerminal reports whether stderr is attached to a terminal.
func StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// New returns the logger and a function that flushes it and closes the log
// file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	var cores []zapcore.Core
	var file afero.File
	if opts.Dir != "" {
		fs := opts.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		if err := fs.MkdirAll(opts.Dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", opts.Dir, err)
		}
		path := filepath.Join(opts.Dir, FileName(now()))
		f, err := fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		file = f
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), level))
	}
	if opts.Console {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() error { return nil }, nil
	}
	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}
