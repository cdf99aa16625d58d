// Package logging configures the run logger: timestamped, leveled messages
// to the console and optionally duplicated to a file. The logger is built
// once per run and injected into components rather than mutated as ambient
// global state.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Setup builds the run logger. Messages go to console; when logFile is
// non-empty they are also appended to that file. The returned close
// function releases the log file and is a no-op for console-only setups.
func Setup(console io.Writer, verbose bool, logFile string) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	w := console
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G302 G304 -- user-chosen log path
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = io.MultiWriter(console, f)
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}
