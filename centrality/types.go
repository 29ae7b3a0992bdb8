// Package centrality provides tunable options and error definitions
// for flow-centrality computation over a core.Network.
package centrality

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("centrality: invalid option supplied")

// Score pairs a user with the number of ordered source/target pairs
// whose shortest referral path passes through that user.
type Score struct {
	ID    string // user ID
	Pairs int    // ordered (source, target) pairs brokered
}

// Option configures centrality computation via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation on invocation.
type Option func(*Options)

// Options holds parameters to customize the all-pairs computation.
type Options struct {
	// Workers bounds how many per-source BFS passes run concurrently.
	// A value of 1 keeps the computation fully sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - sequential execution (Workers == 1)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		err:     nil,
	}
}

// WithWorkers bounds the number of concurrent BFS passes.
//
//	w > 0:  run up to w passes at once
//	w == 0: explicit default (sequential)
//	w < 0:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		switch {
		case w < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)
		case w == 0:
			o.Workers = 1
		default:
			o.Workers = w
		}
	}
}
