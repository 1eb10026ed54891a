// Package core defines the Valve and Network types every solver in this
// module reads from.
//
// A Network is built once from an already-parsed list of valves and is
// read-only afterwards, so it can be shared across goroutines without locks.
//
// This file declares Valve, Network, NetworkOption, sentinel errors,
// and the option constructors.
//
// Errors:
//
//	ErrEmptyValveName  - valve name is the empty string.
//	ErrDuplicateValve  - two valves share the same name.
//	ErrNegativeRate    - valve declares a flow rate below zero.
//	ErrUnknownValve    - a tunnel points to a valve that was never declared.
//	ErrValveNotFound   - lookup by name or index failed.
package core

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyValveName indicates that a Valve has an empty Name.
	ErrEmptyValveName = errors.New("core: valve name is empty")

	// ErrDuplicateValve indicates that two valves share a Name.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrNegativeRate indicates a flow rate below zero.
	ErrNegativeRate = errors.New("core: negative flow rate")

	// ErrUnknownValve indicates a tunnel toward an undeclared valve.
	ErrUnknownValve = errors.New("core: tunnel to unknown valve")

	// ErrValveNotFound indicates a lookup for a valve that does not exist.
	ErrValveNotFound = errors.New("core: valve not found")
)

// Valve is one node of the tunnel network.
//
// Tunnels lists neighbor names as declared by the input; each tunnel
// costs one minute to walk.
type Valve struct {
	// Name uniquely identifies the valve within its Network.
	Name string

	// Rate is the pressure released per minute once the valve is open.
	Rate int

	// Tunnels holds the names of directly reachable valves.
	Tunnels []string
}

// NetworkOption configures a Network before it is built.
type NetworkOption func(n *Network)

// WithSymmetricTunnels mirrors every declared tunnel so that A→B implies B→A.
// Only use it when the input is known to describe two-way tunnels.
func WithSymmetricTunnels() NetworkOption {
	return func(n *Network) { n.symmetric = true }
}

// Network is the immutable valve graph.
//
// Valves keep the order they were given in; that order defines their
// stable 0-based index used by every other package.
type Network struct {
	symmetric bool // mirror declared tunnels

	valves    []Valve        // index → valve (deep copies)
	index     map[string]int // name → index
	neighbors [][]int        // index → sorted, de-duplicated neighbor indices
	useful    []int          // indices with Rate > 0, ascending
}
