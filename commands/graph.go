package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRouteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "route <document-number>",
		Short: "Show the signature route for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.loadGraph(flags.logger())
			if err != nil {
				return err
			}
			route := g.SignatureRoute(args[0])
			if !route.Found {
				return fmt.Errorf("document %q is not in the graph", args[0])
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(route)
		},
	}
}

func newSignersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "signers <document-number>",
		Short: "List employees eligible to sign a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.loadGraph(flags.logger())
			if err != nil {
				return err
			}
			signers := g.EligibleSigners(args[0])
			if len(signers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no eligible signers")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(signers, "\n"))
			return nil
		},
	}
}

func newChainCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <document-number>",
		Short: "Show the approval chain for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.loadGraph(flags.logger())
			if err != nil {
				return err
			}
			chain := g.ApprovalChain(args[0])
			if len(chain) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no approval chain")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chain, " -> "))
			return nil
		},
	}
}

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show approval graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.loadGraph(flags.logger())
			if err != nil {
				return err
			}
			stats := g.Statistics()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes: %d\nedges: %d\naverage degree: %.2f\n",
				stats.TotalNodes, stats.TotalEdges, stats.AverageDegree)
			for kind, count := range stats.NodeKinds {
				fmt.Fprintf(out, "  %s: %d\n", kind, count)
			}
			if report := g.Report(); report.SkippedEdges > 0 {
				fmt.Fprintf(out, "skipped edges (missing endpoints): %d\n", report.SkippedEdges)
			}
			return nil
		},
	}
}
