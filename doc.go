// Package volcano finds the valve-opening plan that releases the most
// pressure from a tunnel network within a time budget, for one agent or for
// two agents working in parallel on disjoint valves.
//
// Opening a valve costs the walk to it (one minute per tunnel) plus one
// minute at the wheel; from then on it releases its rate every minute until
// the budget runs out.
//
// Everything is organized under small subpackages, leaf first:
//
//	core/      - Valve and the immutable Network (stable indices, useful set)
//	matrix/    - Floyd–Warshall travel-time table with a dedicated unreachable marker
//	mask/      - uint64 opened-set bit mask
//	search/    - Planner: exhaustive time-budgeted DFS, Replay for audits
//	optimize/  - Best (one agent) and BestPair (two agents, optional workers)
//	parser/    - text valve descriptions → core.Valve
//	config/    - YAML settings with validation
//	telemetry/ - OpenTelemetry providers and solver metrics
//	solver/    - the full pipeline with logging, tracing and run ids
//	cli/       - cobra commands behind cmd/volcano
//
// Quick ASCII example:
//
//	AA ── BB(13) ── CC(2)
//
// Starting at AA with 5 minutes, opening BB at minute 2 releases 13·3 = 39.
//
//	go install github.com/ccalmels/volcano/cmd/volcano@latest
//	volcano solve input.txt
package volcano
