package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccalmels/volcano/config"
	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/parser"
)

// newLogger builds a text logger on the command's stderr. --verbose selects
// Debug, --quiet selects Error, the default is Warn.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// addConfigFlags registers the flags shared by commands that need a Config.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "YAML settings file")
	cmd.Flags().String("start", config.DefaultStart, "Start valve name")
	cmd.Flags().Bool("symmetric", false, "Mirror every declared tunnel")
}

// loadConfig reads --config (if set) and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return cfg, exitError(exitFileNotFound, "config file not found: %s", path)
			}
			return cfg, exitError(exitInvalid, "%w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start, _ = flags.GetString("start")
	}
	if flags.Changed("symmetric") {
		cfg.Symmetric, _ = flags.GetBool("symmetric")
	}
	if flags.Lookup("budget") != nil && flags.Changed("budget") {
		cfg.Budget, _ = flags.GetInt("budget")
	}
	if flags.Lookup("team-budget") != nil && flags.Changed("team-budget") {
		cfg.TeamBudget, _ = flags.GetInt("team-budget")
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, exitError(exitInvalid, "%w", err)
	}

	return cfg, nil
}

// loadNetwork parses the valve file at path; "-" reads from stdin.
func loadNetwork(cmd *cobra.Command, path string, symmetric bool) (*core.Network, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, exitError(exitFileNotFound, "file not found: %s", path)
			}
			return nil, exitError(exitRuntime, "opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var opts []core.NetworkOption
	if symmetric {
		opts = append(opts, core.WithSymmetricTunnels())
	}
	net, err := parser.ParseNetwork(r, opts...)
	if err != nil {
		return nil, exitError(exitInputParse, "%s: %w", path, err)
	}

	return net, nil
}
