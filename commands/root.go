// Package commands implements the docflow CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/docflow/catalog"
	"github.com/c360studio/docflow/flowgraph"
)

const appName = "docflow"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	catalogPath  string
	snapshotPath string
	verbose      bool
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the docflow command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Document compliance validation and approval routing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "rules.yaml", "path to the rule catalog YAML file")
	cmd.PersistentFlags().StringVar(&flags.snapshotPath, "entities", "", "path to an entity snapshot YAML file (default: built-in sample)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newValidateCmd(flags),
		newBatchCmd(flags),
		newRouteCmd(flags),
		newSignersCmd(flags),
		newChainCmd(flags),
		newStatsCmd(flags),
		newCatalogCmd(flags),
		newSampleCmd(),
		newServeCmd(flags),
	)
	return cmd
}

// logger builds the CLI logger at the requested level.
func (f *rootFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadCatalog loads the rule catalog, surfacing configuration errors
// before any document is touched.
func (f *rootFlags) loadCatalog(logger *slog.Logger) (*catalog.Store, *catalog.Catalog, error) {
	store := catalog.NewStore(f.catalogPath, logger)
	cat, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("rule catalog: %w", err)
	}
	cat.Lint(logger)
	return store, cat, nil
}

// loadGraph builds the approval graph from the entity snapshot, or from
// the built-in sample when no snapshot is given.
func (f *rootFlags) loadGraph(logger *slog.Logger) (*flowgraph.Graph, error) {
	snap := flowgraph.SampleSnapshot()
	if f.snapshotPath != "" {
		loaded, err := flowgraph.LoadSnapshot(f.snapshotPath)
		if err != nil {
			return nil, err
		}
		snap = loaded
	}
	return snap.Build(flowgraph.WithLogger(logger)), nil
}
