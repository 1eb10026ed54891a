package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccalmels/volcano/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "volcano",
	Short: "Valve-opening pressure release optimizer",
	Long:  "volcano finds the valve-opening plan that releases the most pressure within a time budget, alone or with a helper.",
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all log output except errors")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("volcano version %s\n", version))

	rootCmd.AddCommand(cli.NewSolveCmd())
	rootCmd.AddCommand(cli.NewDistancesCmd())
}
