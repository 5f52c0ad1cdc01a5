package autolog

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
)

type contextKey struct{}

var defaultLogger = New(os.Stderr, isTerminal(os.Stderr), Info)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Context attaches logger to ctx, returning a child context From can
// later recover it from (spec's "autolog.Context(ctx) attaches a
// logger").
func Context(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// From returns the Logger value attached to ctx, or a stderr-writing
// default (coloured only when stderr is a terminal) if none was
// attached. A nil ctx is treated like context.Background().
func From(ctx context.Context) Logger {
	if ctx == nil {
		return defaultLogger
	}
	if l, ok := ctx.Value(contextKey{}).(Logger); ok {
		return l
	}
	return defaultLogger
}
