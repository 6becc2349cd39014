package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/docflow/engine"
	"github.com/c360studio/docflow/metrics"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	var (
		docPath string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a single document against the rule catalog",
		Long: `Validate reads one document (JSON via --document, or flags) and prints
the verdict with its [ERROR]/[WARNING]/[OK] prefix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.logger()
			_, cat, err := flags.loadCatalog(logger)
			if err != nil {
				return err
			}

			doc, err := documentFromFlags(cmd, docPath)
			if err != nil {
				return err
			}

			eng := engine.New(cat, engine.WithLogger(logger))
			if summary {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(eng.Summarize(doc))
			}

			verdict := eng.Evaluate(doc)
			metrics.ObserveVerdict(verdict)
			fmt.Fprintln(cmd.OutOrStdout(), verdict.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&docPath, "document", "", "path to a JSON document file")
	cmd.Flags().Bool("signed", false, "document is signed")
	cmd.Flags().String("type", "", "document type code")
	cmd.Flags().String("number", "", "document number")
	cmd.Flags().String("issue-date", "", "issue date (YYYY-MM-DD)")
	cmd.Flags().String("expiry-date", "", "expiry date (YYYY-MM-DD)")
	cmd.Flags().Float64("amount", 0, "total amount")
	cmd.Flags().String("inn", "", "tax identifier")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a per-check summary instead of the verdict")
	return cmd
}

// documentFromFlags builds the document from --document JSON or from the
// individual flags.
func documentFromFlags(cmd *cobra.Command, docPath string) (engine.Document, error) {
	var doc engine.Document
	if docPath != "" {
		data, err := os.ReadFile(docPath)
		if err != nil {
			return doc, fmt.Errorf("read document: %w", err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("parse document %s: %w", docPath, err)
		}
		return doc, nil
	}

	doc.Type, _ = cmd.Flags().GetString("type")
	doc.Number, _ = cmd.Flags().GetString("number")
	doc.IssueDate, _ = cmd.Flags().GetString("issue-date")
	doc.ExpiryDate, _ = cmd.Flags().GetString("expiry-date")
	doc.INN, _ = cmd.Flags().GetString("inn")
	doc.IsSigned, _ = cmd.Flags().GetBool("signed")
	if cmd.Flags().Changed("amount") {
		doc.Amount, _ = cmd.Flags().GetFloat64("amount")
		doc.HasAmount = true
	}
	return doc, nil
}
