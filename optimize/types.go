// Package optimize reduces search outcomes to the puzzle answers: the best
// single agent, and the best pair of agents opening disjoint valve sets.
package optimize

import (
	"context"
	"errors"

	"github.com/ccalmels/volcano/search"
)

var (
	// ErrNoOutcomes is returned when an optimizer receives an empty list.
	ErrNoOutcomes = errors.New("optimize: no outcomes")

	// ErrNoDisjointPair reports that no two outcomes open disjoint valve
	// sets. Search always emits the empty-set outcome, so seeing this error
	// means an internal invariant was broken upstream.
	ErrNoDisjointPair = errors.New("optimize: no disjoint pair of outcomes")
)

// Pair is the two-agent answer: two outcomes with disjoint masks.
type Pair struct {
	// First and Second are the chosen outcomes, First at the lower index.
	First, Second search.Outcome

	// FirstIndex and SecondIndex locate the outcomes in the input list.
	FirstIndex, SecondIndex int

	// Flow is First.Flow + Second.Flow.
	Flow int
}

// Option configures optional behavior of BestPair.
type Option func(*Options)

// Options holds configurable parameters for BestPair.
type Options struct {
	// Ctx allows cancellation of long scans; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of goroutines sharing the outer loop.
	// Values below 2 select the sequential scan. Default 1.
	Workers int
}

// DefaultOptions returns Options with a background context and one worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of scanning goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}
