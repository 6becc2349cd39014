package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/docflow/engine"
	"github.com/c360studio/docflow/validate"
)

// csvColumns is the expected header for batch input files.
var csvColumns = []string{
	"document_type",
	"document_number",
	"issue_date",
	"expiry_date",
	"total_amount",
	"inn",
	"is_signed",
}

// ReadCSV decodes a batch input file into documents. The header row is
// required; column order does not matter. Malformed rows fail the decode
// with their line number rather than producing a misleading verdict.
func ReadCSV(r io.Reader) ([]engine.Document, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"document_type", "document_number", "issue_date"} {
		if _, present := col[required]; !present {
			return nil, fmt.Errorf("csv header missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, present := col[name]
		if !present || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var docs []engine.Document
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		doc := engine.Document{
			Type:       field(record, "document_type"),
			Number:     field(record, "document_number"),
			IssueDate:  field(record, "issue_date"),
			ExpiryDate: field(record, "expiry_date"),
			INN:        field(record, "inn"),
		}
		if raw := field(record, "total_amount"); raw != "" {
			amount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: invalid total_amount %q", line, raw)
			}
			doc.Amount = amount
			doc.HasAmount = true
		}
		doc.IsSigned = parseBool(field(record, "is_signed"))
		docs = append(docs, doc)
	}
	return docs, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// WriteResultsCSV writes one row per result with the rendered verdict, in
// the shape downstream spreadsheet tooling expects.
func WriteResultsCSV(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"document_number", "document_type", "issue_date", "total_amount", "status", "result"}); err != nil {
		return err
	}
	for _, res := range results {
		doc := res.Document
		amount := ""
		if doc.HasAmount {
			amount = strconv.FormatFloat(doc.Amount, 'f', -1, 64)
		}
		row := []string{
			doc.Number,
			doc.Type,
			doc.IssueDate,
			amount,
			strings.ToUpper(string(res.Verdict.Kind)),
			res.Verdict.String(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SampleCSV returns a small batch input exercising the main outcomes:
// two clean documents, a bad INN, an unsigned document, and a
// blacklisted type. Dates are relative to the given day so the sample
// stays valid.
func SampleCSV(today time.Time) string {
	day := today.Format(validate.DateLayout)
	nextYear := today.AddDate(1, 0, 0).Format(validate.DateLayout)
	rows := []string{
		strings.Join(csvColumns, ","),
		fmt.Sprintf("invoice,INV-001,%s,%s,15000.00,7743013902,true", day, nextYear),
		fmt.Sprintf("contract,CTR-002,%s,%s,500000.00,526317984689,true", day, nextYear),
		fmt.Sprintf("invoice,INV-003,%s,%s,50000.00,123456,true", day, nextYear),
		fmt.Sprintf("invoice,INV-004,%s,%s,10000.00,7743013902,false", day, nextYear),
		fmt.Sprintf("draft,DRF-005,%s,%s,1000.00,7743013902,true", day, nextYear),
	}
	return strings.Join(rows, "\n") + "\n"
}
