package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/docflow/batch"
	"github.com/c360studio/docflow/flowgraph"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate sample data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "csv",
		Short: "Print a sample batch CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), batch.SampleCSV(time.Now()))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "entities",
		Short: "Print the sample entity snapshot as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(flowgraph.SampleSnapshot())
		},
	})

	return cmd
}
