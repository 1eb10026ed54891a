// Package telemetry wires OpenTelemetry tracing and metrics for solver runs.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricSearches      = "volcano.search.runs"
	MetricOutcomes      = "volcano.search.outcomes"
	MetricExpanded      = "volcano.search.expanded"
	MetricPruned        = "volcano.search.pruned"
	MetricPhaseDuration = "volcano.phase.duration"
)

// Metrics records counters and histograms for solver phases.
type Metrics struct {
	searches      metric.Int64Counter
	outcomes      metric.Int64Counter
	expanded      metric.Int64Counter
	pruned        metric.Int64Counter
	phaseDuration metric.Float64Histogram
}

// NewMetrics creates a Metrics that uses the given meter to create
// instruments for recording solver metrics.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	searches, err := meter.Int64Counter(MetricSearches,
		metric.WithDescription("Number of budgeted searches run"),
	)
	if err != nil {
		return nil, err
	}

	outcomes, err := meter.Int64Counter(MetricOutcomes,
		metric.WithDescription("Number of search outcomes emitted"),
	)
	if err != nil {
		return nil, err
	}

	expanded, err := meter.Int64Counter(MetricExpanded,
		metric.WithDescription("Number of search states visited"),
	)
	if err != nil {
		return nil, err
	}

	pruned, err := meter.Int64Counter(MetricPruned,
		metric.WithDescription("Number of candidate valves pruned by the time budget"),
	)
	if err != nil {
		return nil, err
	}

	phaseDur, err := meter.Float64Histogram(MetricPhaseDuration,
		metric.WithDescription("Duration of a solver phase in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		searches:      searches,
		outcomes:      outcomes,
		expanded:      expanded,
		pruned:        pruned,
		phaseDuration: phaseDur,
	}, nil
}

// SearchStats is what one budgeted search reports to RecordSearch.
type SearchStats struct {
	Budget   int
	Outcomes int
	Expanded int
	Pruned   int
}

// RecordSearch counts one search run with its outcome, state and prune totals.
func (m *Metrics) RecordSearch(ctx context.Context, st SearchStats) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Int("budget", st.Budget))
	m.searches.Add(ctx, 1, attrs)
	m.outcomes.Add(ctx, int64(st.Outcomes), attrs)
	m.expanded.Add(ctx, int64(st.Expanded), attrs)
	m.pruned.Add(ctx, int64(st.Pruned), attrs)
}

// RecordPhase records how long a named phase took.
func (m *Metrics) RecordPhase(ctx context.Context, phase string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.phaseDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("phase", phase)),
	)
}
