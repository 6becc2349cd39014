package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/docflow/batch"
	"github.com/c360studio/docflow/engine"
	"github.com/c360studio/docflow/metrics"
)

func newBatchCmd(flags *rootFlags) *cobra.Command {
	var (
		outPath     string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch <csv-file-or-glob>...",
		Short: "Validate documents from CSV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.logger()
			_, cat, err := flags.loadCatalog(logger)
			if err != nil {
				return err
			}

			files, err := batch.ExpandInputs(args)
			if err != nil {
				return err
			}

			var docs []engine.Document
			for _, file := range files {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				fileDocs, err := batch.ReadCSV(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				docs = append(docs, fileDocs...)
			}

			runner := batch.NewRunner(
				engine.New(cat, engine.WithLogger(logger)),
				batch.WithConcurrency(concurrency),
				batch.WithLogger(logger),
			)
			results, summary, err := runner.Run(cmd.Context(), docs)
			if err != nil {
				return err
			}
			metrics.ObserveBatch(summary)
			for _, res := range results {
				metrics.ObserveVerdict(res.Verdict)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s: %d documents, %d ok, %d warnings, %d errors\n",
				summary.RunID, summary.Total, summary.OK, summary.Warnings, summary.Errors)
			for _, res := range results {
				fmt.Fprintf(out, "%s: %s\n", res.Document.Number, res.Verdict.String())
			}

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := batch.WriteResultsCSV(f, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "results written to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write results CSV to this path")
	cmd.Flags().IntVar(&concurrency, "concurrency", batch.DefaultConcurrency, "parallel evaluation limit")
	return cmd
}
