package bezkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports itself disabled, so callers skip
// building attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() { logger.Store(slog.New(discard{})) }

// SetLogger sets the logger used for diagnostics. The package is silent
// until SetLogger is called; passing nil silences it again.
//
// Only [slog.LevelDebug] is used, for numerical fallbacks such as a cubic
// that cannot be approximated by quadratics within the requested accuracy.
// It is safe to call SetLogger concurrently with any other function.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger { return logger.Load() }
