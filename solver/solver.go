// Package solver runs the whole pipeline on a valve network: distances,
// useful-valve planning, both budgeted searches and both optimizers.
//
// Every run gets a uuid run id that tags its log lines and its root span.
package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ccalmels/volcano/config"
	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/matrix"
	"github.com/ccalmels/volcano/optimize"
	"github.com/ccalmels/volcano/search"
	"github.com/ccalmels/volcano/telemetry"
)

// Agent describes what one actor opens.
type Agent struct {
	// Flow is the pressure this agent releases over its budget.
	Flow int `json:"flow"`

	// Opened lists the opened valve names in useful-set order.
	Opened []string `json:"opened"`

	// Order lists the opened valve names in opening order.
	// Only filled when the solver runs WithExplain.
	Order []string `json:"order,omitempty"`
}

// Report is the result of one Solve call.
type Report struct {
	RunID      string `json:"run_id"`
	Start      string `json:"start"`
	Useful     int    `json:"useful_valves"`
	Budget     int    `json:"budget"`
	TeamBudget int    `json:"team_budget"`

	// Solo is the single-agent optimum.
	Solo Agent `json:"solo"`

	// Team holds the two agents of the two-agent optimum.
	Team [2]Agent `json:"team"`

	// TeamFlow is Team[0].Flow + Team[1].Flow.
	TeamFlow int `json:"team_flow"`

	SoloOutcomes int           `json:"solo_outcomes"`
	TeamOutcomes int           `json:"team_outcomes"`
	Elapsed      time.Duration `json:"elapsed_ns"`
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger; defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer; defaults to the global otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithMetrics sets the metric recorder; nil disables metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithExplain records opening orders in the Report.
func WithExplain() Option {
	return func(s *Solver) { s.explain = true }
}

// Solver computes both answers for a network under a fixed Config.
// A Solver holds no per-run state and may be reused.
type Solver struct {
	cfg     config.Config
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	explain bool
}

// New validates cfg and returns a Solver.
func New(cfg config.Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:    cfg,
		logger: slog.Default(),
		tracer: otel.Tracer(telemetry.ScopeName),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the solver settings.
func (s *Solver) Config() config.Config { return s.cfg }

// Solve runs the single-agent search on Budget and the two-agent search on
// TeamBudget, both from the configured start valve.
func (s *Solver) Solve(ctx context.Context, net *core.Network) (rep *Report, err error) {
	began := time.Now()
	runID := uuid.NewString()
	log := s.logger.With(slog.String("run_id", runID))

	ctx, span := s.tracer.Start(ctx, "volcano.solve", trace.WithAttributes(
		attribute.String("volcano.run_id", runID),
		attribute.String("volcano.start", s.cfg.Start),
		attribute.Int("volcano.budget", s.cfg.Budget),
		attribute.Int("volcano.team_budget", s.cfg.TeamBudget),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Error("solve failed", slog.Any("error", err))
		}
		span.End()
	}()

	if net == nil {
		return nil, fmt.Errorf("solver: %w", search.ErrNilNetwork)
	}
	start, err := net.Index(s.cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("solver: start valve: %w", err)
	}

	planner, err := s.plan(ctx, net)
	if err != nil {
		return nil, err
	}
	log.Debug("planner ready",
		slog.Int("valves", net.Len()),
		slog.Int("useful", len(planner.Useful())),
	)

	solo, soloCount, err := s.solo(ctx, log, planner, start)
	if err != nil {
		return nil, err
	}
	team, teamFlow, teamCount, err := s.team(ctx, log, planner, start)
	if err != nil {
		return nil, err
	}

	rep = &Report{
		RunID:        runID,
		Start:        s.cfg.Start,
		Useful:       len(planner.Useful()),
		Budget:       s.cfg.Budget,
		TeamBudget:   s.cfg.TeamBudget,
		Solo:         solo,
		Team:         team,
		TeamFlow:     teamFlow,
		SoloOutcomes: soloCount,
		TeamOutcomes: teamCount,
		Elapsed:      time.Since(began),
	}
	span.SetAttributes(
		attribute.Int("volcano.solo_flow", rep.Solo.Flow),
		attribute.Int("volcano.team_flow", rep.TeamFlow),
	)
	log.Info("solved",
		slog.Int("solo_flow", rep.Solo.Flow),
		slog.Int("team_flow", rep.TeamFlow),
		slog.Duration("elapsed", rep.Elapsed),
	)

	return rep, nil
}

// plan builds the distance table and the planner.
func (s *Solver) plan(ctx context.Context, net *core.Network) (*search.Planner, error) {
	ctx, span := s.tracer.Start(ctx, "volcano.distances")
	defer span.End()

	began := time.Now()
	dist, err := matrix.FloydWarshall(net)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	planner, err := search.NewPlanner(net, dist)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	s.metrics.RecordPhase(ctx, "distances", time.Since(began))

	return planner, nil
}

// explore runs one budgeted search under its own span.
func (s *Solver) explore(ctx context.Context, log *slog.Logger, p *search.Planner, start, budget int) (*search.Result, error) {
	ctx, span := s.tracer.Start(ctx, "volcano.search",
		trace.WithAttributes(attribute.Int("volcano.budget", budget)))
	defer span.End()

	began := time.Now()
	opts := []search.Option{search.WithContext(ctx)}
	if s.explain {
		opts = append(opts, search.WithOrder())
	}
	res, err := p.Explore(start, budget, opts...)
	if err != nil {
		return nil, fmt.Errorf("solver: search %d: %w", budget, err)
	}
	span.SetAttributes(
		attribute.Int("volcano.outcomes", len(res.Outcomes)),
		attribute.Int("volcano.pruned", res.Pruned),
	)
	s.metrics.RecordSearch(ctx, telemetry.SearchStats{
		Budget:   budget,
		Outcomes: len(res.Outcomes),
		Expanded: res.Expanded,
		Pruned:   res.Pruned,
	})
	s.metrics.RecordPhase(ctx, "search", time.Since(began))
	log.Debug("search done",
		slog.Int("budget", budget),
		slog.Int("outcomes", len(res.Outcomes)),
		slog.Int("expanded", res.Expanded),
		slog.Int("pruned", res.Pruned),
	)

	return res, nil
}

func (s *Solver) solo(ctx context.Context, log *slog.Logger, p *search.Planner, start int) (Agent, int, error) {
	res, err := s.explore(ctx, log, p, start, s.cfg.Budget)
	if err != nil {
		return Agent{}, 0, err
	}
	best, err := optimize.Best(res.Outcomes)
	if err != nil {
		return Agent{}, 0, fmt.Errorf("solver: %w", err)
	}

	return s.agent(p, best), len(res.Outcomes), nil
}

func (s *Solver) team(ctx context.Context, log *slog.Logger, p *search.Planner, start int) ([2]Agent, int, int, error) {
	res, err := s.explore(ctx, log, p, start, s.cfg.TeamBudget)
	if err != nil {
		return [2]Agent{}, 0, 0, err
	}

	pctx, span := s.tracer.Start(ctx, "volcano.pair",
		trace.WithAttributes(attribute.Int("volcano.workers", s.cfg.Workers)))
	defer span.End()

	began := time.Now()
	pair, err := optimize.BestPair(res.Outcomes,
		optimize.WithContext(pctx),
		optimize.WithWorkers(s.cfg.Workers),
	)
	if err != nil {
		return [2]Agent{}, 0, 0, fmt.Errorf("solver: %w", err)
	}
	s.metrics.RecordPhase(pctx, "pair", time.Since(began))
	log.Debug("pair done",
		slog.Int("workers", s.cfg.Workers),
		slog.Int("flow", pair.Flow),
	)

	return [2]Agent{s.agent(p, pair.First), s.agent(p, pair.Second)}, pair.Flow, len(res.Outcomes), nil
}

// agent turns an outcome into names.
func (s *Solver) agent(p *search.Planner, o search.Outcome) Agent {
	a := Agent{Flow: o.Flow, Opened: p.Names(o.Mask)}
	if o.Order != nil {
		net := p.Network()
		a.Order = make([]string, len(o.Order))
		for i, v := range o.Order {
			a.Order[i] = net.Name(v)
		}
	}

	return a
}
