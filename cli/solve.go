package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/ccalmels/volcano/config"
	"github.com/ccalmels/volcano/solver"
	"github.com/ccalmels/volcano/telemetry"
)

// NewSolveCmd creates the "solve" subcommand.
func NewSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Compute the best single-agent and two-agent pressure release",
		Long: "Solve reads a valve description (\"-\" for stdin) and prints the maximum\n" +
			"pressure one agent releases within --budget minutes and two agents\n" +
			"release within --team-budget minutes each.",
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	addConfigFlags(cmd)
	cmd.Flags().Int("budget", config.DefaultBudget, "Single-agent time budget in minutes")
	cmd.Flags().Int("team-budget", config.DefaultTeamBudget, "Per-agent time budget of the two-agent variant")
	cmd.Flags().Int("workers", config.DefaultWorkers, "Goroutines used by the pair scan")
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().Bool("explain", false, "Print the opening order of every agent")
	cmd.Flags().String("otlp-endpoint", "", "Export traces to this OTLP/HTTP collector (host:port)")
	cmd.Flags().Bool("otlp-insecure", false, "Disable TLS toward --otlp-endpoint")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return exitError(exitInvalid, "unknown format %q", format)
	}
	explain, _ := cmd.Flags().GetBool("explain")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	net, err := loadNetwork(cmd, args[0], cfg.Symmetric)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := newLogger(cmd)
	endpoint, _ := cmd.Flags().GetString("otlp-endpoint")
	insecure, _ := cmd.Flags().GetBool("otlp-insecure")
	providers, err := telemetry.Setup(ctx, telemetry.Options{Endpoint: endpoint, Insecure: insecure})
	if err != nil {
		return exitError(exitRuntime, "%w", err)
	}
	defer func() {
		// Flushes pending spans and metrics; a dead collector only costs a warning.
		if err := providers.Shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown failed",
				slog.String("endpoint", endpoint),
				slog.Any("error", err),
			)
		}
	}()

	metrics, err := telemetry.NewMetrics(otel.Meter(telemetry.ScopeName))
	if err != nil {
		return exitError(exitRuntime, "%w", err)
	}

	opts := []solver.Option{
		solver.WithLogger(logger),
		solver.WithTracer(otel.Tracer(telemetry.ScopeName)),
		solver.WithMetrics(metrics),
	}
	if explain {
		opts = append(opts, solver.WithExplain())
	}
	s, err := solver.New(cfg, opts...)
	if err != nil {
		return exitError(exitInvalid, "%w", err)
	}

	rep, err := s.Solve(ctx, net)
	if err != nil {
		return exitError(exitRuntime, "%w", err)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return exitError(exitRuntime, "writing report: %w", err)
		}
		return nil
	}
	printReportText(out, rep, explain)

	return nil
}

// printReportText writes the two answers, then the agents' valves.
func printReportText(w io.Writer, rep *solver.Report, explain bool) {
	fmt.Fprintf(w, "solo (%d min): %d\n", rep.Budget, rep.Solo.Flow)
	fmt.Fprintf(w, "team (%d min): %d\n", rep.TeamBudget, rep.TeamFlow)
	if !explain {
		return
	}

	fmt.Fprintf(w, "\nsolo: %s\n", strings.Join(rep.Solo.Order, " → "))
	for i, a := range rep.Team {
		fmt.Fprintf(w, "agent %d (%d): %s\n", i+1, a.Flow, strings.Join(a.Order, " → "))
	}
}
