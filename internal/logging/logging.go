package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type Options struct {
	Level zerolog.Level
	// File receives JSON log lines when Verbose is off. Empty disables logging.
	File    string
	Verbose bool
	Stderr  io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the process logger. Verbose mode writes human-readable lines to
// stderr at debug level; otherwise logs are appended to File so they do not
// interleave with command output or the TUI.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.Verbose {
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTerminal(out)}
		return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(), nopCloser{}, nil
	}

	if opts.File == "" || opts.Level == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).Level(opts.Level).With().Timestamp().Int("pid", os.Getpid()).Logger()
	return logger, file, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
