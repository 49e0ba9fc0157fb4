// Package statespace provides tunable options and error definitions for
// state-space closure and transition-matrix assembly.
package statespace

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("statespace: invalid option supplied")

// Option configures closure and matrix assembly via functional arguments.
// An invalid Option (e.g. negative worker count) is recorded internally
// and surfaced as ErrOptionViolation when the operation is invoked.
type Option func(*Options)

// Options holds parameters for All and NewMatrix.
type Options struct {
	// Ctx allows cancellation and deadlines; closure over a 5^N domain
	// can run long for large N.
	Ctx context.Context

	// Workers bounds the number of goroutines fanning out over the
	// frontier or state set. 0 means GOMAXPROCS. Per-state expansion is
	// independent and set union is associative and commutative, so the
	// fan-out does not affect the result.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers == 0 (GOMAXPROCS)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the expansion fan-out.
//
//	k > 0: use exactly k workers
//	k == 0: use GOMAXPROCS
//	k < 0: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// buildOptions folds opts over the defaults and reports any recorded
// option violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
