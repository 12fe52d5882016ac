// SPDX-License-Identifier: MIT

// Package logger assembles *slog.Logger values for the lvmath binaries and
// hands library packages a silent default.
//
// Two ways to obtain a logger:
//
//	New(mode, w)      - text (dev) or JSON (prod) handler writing to w.
//	NewAsync(...)     - the same handler behind an AsyncHandler, for the
//	                    HTTP server where logging must not block requests.
//
// Library packages never build loggers themselves; they accept one through
// a WithLogger option and fall back to Discard().
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Mode selects handler format and level.
type Mode uint8

const (
	// ModeDev writes text records at debug level.
	ModeDev Mode = iota

	// ModeProd writes JSON records at info level.
	ModeProd

	// ModeSilence drops everything.
	ModeSilence
)

var modeNames = [...]string{"dev", "prod", "silence"}

// String returns "dev", "prod" or "silence".
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode resolves a mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}

	return ModeDev, fmt.Errorf("logger: unknown mode %q", s)
}

// New returns a logger for mode writing to w.
func New(mode Mode, w io.Writer) *slog.Logger {
	return slog.New(buildHandler(mode, w))
}

// NewAsync returns a logger whose handler is wrapped in an AsyncHandler with
// a queue of buf records. Callers Close the handler on shutdown.
func NewAsync(mode Mode, w io.Writer, buf int) (*slog.Logger, *AsyncHandler) {
	h := NewAsyncHandler(buildHandler(mode, w), buf)

	return slog.New(h), h
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(buildHandler(ModeSilence, nil))
}

// Verbose maps the CLI -v count onto a mode: 0 silence, 1 prod, 2+ dev.
func Verbose(count int) Mode {
	switch {
	case count <= 0:
		return ModeSilence
	case count == 1:
		return ModeProd
	}

	return ModeDev
}

func buildHandler(mode Mode, w io.Writer) slog.Handler {
	if w == nil {
		w = io.Discard
	}
	switch mode {
	case ModeProd:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}
