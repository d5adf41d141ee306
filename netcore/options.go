// SPDX-License-Identifier: MIT

package netcore

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/netcore/matrix"
)

const panicNilLogger = "netcore: WithLogger: logger must be non-nil"

// Option configures a reduction run. Use with Reduce, ReduceValidated or Run.
type Option func(*Options)

// Options holds the effective configuration of one reduction run.
type Options struct {
	// Ctx allows cancellation between loop iterations; defaults to context.Background().
	Ctx context.Context

	// Logger receives Debug records for every loop iteration. Defaults to a
	// discarding logger: the library is silent unless asked.
	Logger *slog.Logger

	// OnStep, if non-nil, is invoked after every isolate or fix is recorded.
	// Returning an error aborts the run with that error and no result.
	OnStep func(Step) error

	// Matrix options forwarded to matrix.Build by Reduce and Run.
	Matrix []matrix.Option
}

// DefaultOptions returns Options with a background context, a discarding
// logger, no hook and default matrix validation.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the context checked before every loop iteration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a structured logger for per-iteration Debug records.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.Logger = l }
}

// WithOnStep installs fn as a hook called after each recorded step.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithMatrixOptions forwards validation options to matrix.Build.
// Repeated use appends.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.Matrix = append(o.Matrix, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
