package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the rule catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load and validate the rule catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.logger()
			_, cat, err := flags.loadCatalog(logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog %s is valid\n", flags.catalogPath)
			fmt.Fprintf(out, "allowed types: %s\n", strings.Join(cat.Types.Allowed, ", "))
			if len(cat.Types.Blacklisted) > 0 {
				fmt.Fprintf(out, "blacklisted types: %s\n", strings.Join(cat.Types.Blacklisted, ", "))
			}
			if findings := cat.Lint(logger); len(findings) > 0 {
				fmt.Fprintln(out, "authoring issues:")
				for _, finding := range findings {
					fmt.Fprintf(out, "  - %s\n", finding)
				}
			}
			return nil
		},
	})

	return cmd
}
