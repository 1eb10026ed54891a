// Package search defines types and options for the time-budgeted valve
// search: outcomes, diagnostics, cancellation and per-outcome hooks.
package search

import (
	"context"
	"errors"

	"github.com/ccalmels/volcano/mask"
)

var (
	// ErrNilNetwork is returned when NewPlanner receives a nil network.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrNilDistances is returned when NewPlanner receives a nil distance table.
	ErrNilDistances = errors.New("search: distances are nil")

	// ErrDimensionMismatch indicates that the distance table does not cover
	// exactly the valves of the network.
	ErrDimensionMismatch = errors.New("search: distances do not match network")

	// ErrStartOutOfRange indicates a start valve index outside the network.
	ErrStartOutOfRange = errors.New("search: start valve out of range")

	// ErrNegativeBudget indicates a time budget below zero.
	ErrNegativeBudget = errors.New("search: negative time budget")

	// ErrNotUseful indicates that Replay was asked to open a zero-rate valve.
	ErrNotUseful = errors.New("search: valve is not useful")

	// ErrAlreadyOpen indicates that Replay was asked to open a valve twice.
	ErrAlreadyOpen = errors.New("search: valve already open")

	// ErrUnreachable indicates that no tunnel path leads to the next valve.
	ErrUnreachable = errors.New("search: valve unreachable")

	// ErrBudgetExceeded indicates that an opening cannot complete with at
	// least one minute left to benefit from it.
	ErrBudgetExceeded = errors.New("search: time budget exceeded")
)

// Outcome is one terminal state of a search path: the set of opened useful
// valves and the total pressure released by the end of the budget if
// nothing else is opened.
type Outcome struct {
	// Mask holds the opened useful-valve positions.
	Mask mask.Mask

	// Flow is the total pressure released over the whole budget.
	Flow int

	// Order lists the opened valve indices in opening order.
	// Only filled when WithOrder is set.
	Order []int
}

// Result captures every outcome of one Explore call plus diagnostics.
type Result struct {
	// Outcomes is the unordered, non-deduplicated outcome list.
	// The first entry is always the self-outcome of the start state.
	Outcomes []Outcome

	// Start is the valve index the search began from.
	Start int

	// Budget is the time budget the search ran with.
	Budget int

	// Expanded counts search states visited (one per emitted outcome).
	Expanded int

	// Pruned counts candidate valves skipped because they could not be
	// reached and opened with time to spare.
	Pruned int
}

// Option configures optional behavior of Explore.
type Option func(*Options)

// Options holds configurable parameters for Explore.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnOutcome, if non-nil, is invoked for every outcome as it is emitted.
	// Returning an error aborts the search with that error.
	OnOutcome func(Outcome) error

	// RecordOrder makes every Outcome carry its opening order.
	RecordOrder bool
}

// DefaultOptions returns Options with a background context, no hook and
// no order recording.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnOutcome:   nil,
		RecordOrder: false,
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

// WithOnOutcome installs fn as a per-outcome hook.
func WithOnOutcome(fn func(Outcome) error) Option {
	return func(o *Options) {
		o.OnOutcome = fn
	}
}

// WithOrder records the opening order on every Outcome.
// It costs one slice allocation per outcome.
func WithOrder() Option {
	return func(o *Options) {
		o.RecordOrder = true
	}
}
