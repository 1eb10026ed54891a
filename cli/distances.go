package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/matrix"
)

// NewDistancesCmd creates the "distances" subcommand.
func NewDistancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distances <file>",
		Short: "Print travel times between the start valve and every useful valve",
		Args:  cobra.ExactArgs(1),
		RunE:  runDistances,
	}

	addConfigFlags(cmd)

	return cmd
}

func runDistances(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	net, err := loadNetwork(cmd, args[0], cfg.Symmetric)
	if err != nil {
		return err
	}
	start, err := net.Index(cfg.Start)
	if err != nil {
		return exitError(exitInvalid, "start valve: %w", err)
	}

	dist, err := matrix.FloydWarshall(net)
	if err != nil {
		return exitError(exitRuntime, "%w", err)
	}

	// The start valve first, then the useful valves, skipping a duplicate
	// start when it is useful itself.
	idx := []int{start}
	for _, v := range net.Useful() {
		if v != start {
			idx = append(idx, v)
		}
	}
	sub, err := dist.Sub(idx)
	if err != nil {
		return exitError(exitRuntime, "%w", err)
	}
	printDistanceTable(cmd.OutOrStdout(), net, idx, sub)

	return nil
}

// printDistanceTable writes an aligned table with valve names as headers.
func printDistanceTable(w io.Writer, net *core.Network, idx []int, sub *matrix.Distances) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, v := range idx {
		fmt.Fprintf(tw, "%s\t", net.Name(v))
	}
	fmt.Fprintln(tw)

	for a, from := range idx {
		fmt.Fprintf(tw, "%s(%d)\t", net.Name(from), net.Rate(from))
		for b := range idx {
			if d, ok := sub.At(a, b); ok {
				fmt.Fprintf(tw, "%d\t", d)
			} else {
				fmt.Fprint(tw, "-\t")
			}
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}
