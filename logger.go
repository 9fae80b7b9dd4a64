package landscape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record and reports every level disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silent)
}

// SetLogger routes the renderer's diagnostics to l; nil silences them
// again. Records emitted:
//
//	debug  "glyph loaded"           name, width, height
//	debug  "scene prepared"         background, dark, slots, moon
//	debug  "placement cache"        store sizes and hit rates
//	info   "animation rendered"     frames, delay
//	warn   "moon overlay disabled"  path, err
//
// Safe for concurrent use with rendering.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
