package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/docflow/catalog"
	"github.com/c360studio/docflow/engine"
)

const batchCatalogYAML = `
critical_rules:
  must_be_signed: true
  expiry_date_must_be_future: true
  must_have_inn: true
document_types:
  allowed: [invoice, contract, act, receipt]
  blacklisted: [draft]
required_fields:
  invoice: [document_number, issue_date, total_amount, inn]
  contract: [document_number, issue_date, expiry_date, total_amount, inn]
inn_validation:
  allowed_lengths: [10, 12]
thresholds:
  min_amount: 0.01
  max_amount: 10000000
  expiry_warning_days: 30
validation_messages:
  error_not_signed: "Document must be signed"
  error_invalid_type: "Document type is not permitted"
  error_missing_fields: "Required fields are missing"
  error_invalid_date: "Invalid date"
  error_expired: "Document has expired"
  error_invalid_inn: "Invalid INN"
  error_amount_range: "Amount is out of range"
  warning_expiring_soon: "Document expires soon"
  warning_large_amount: "Unusually large amount"
  success: "Document passed validation"
`

var today = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat, err := catalog.LoadFromBytes([]byte(batchCatalogYAML))
	require.NoError(t, err)
	return engine.New(cat, engine.WithClock(func() time.Time { return today }))
}

func TestRunSampleBatch(t *testing.T) {
	docs, err := ReadCSV(strings.NewReader(SampleCSV(today)))
	require.NoError(t, err)
	require.Len(t, docs, 5)

	runner := NewRunner(testEngine(t), WithConcurrency(2))
	results, summary, err := runner.Run(context.Background(), docs)
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.OK)
	assert.Zero(t, summary.Warnings)
	assert.Equal(t, 3, summary.Errors)

	// results keep input order regardless of worker scheduling
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, docs[i].Number, res.Document.Number)
	}
	assert.Equal(t, engine.KindOK, results[0].Verdict.Kind)      // clean invoice
	assert.Equal(t, engine.KindOK, results[1].Verdict.Kind)      // clean contract
	assert.Equal(t, engine.KindError, results[2].Verdict.Kind)   // short INN
	assert.Equal(t, engine.KindError, results[3].Verdict.Kind)   // unsigned
	assert.Equal(t, engine.KindError, results[4].Verdict.Kind)   // blacklisted type
	assert.Contains(t, results[2].Verdict.Message(), "Invalid INN")
}

func TestRunEmptyBatch(t *testing.T) {
	results, summary, err := NewRunner(testEngine(t)).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, summary.Total)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs, err := ReadCSV(strings.NewReader(SampleCSV(today)))
	require.NoError(t, err)

	_, _, err = NewRunner(testEngine(t), WithConcurrency(1)).Run(ctx, docs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadCSVHeaderHandling(t *testing.T) {
	// columns may come in any order
	reordered := "inn,document_number,document_type,issue_date,is_signed\n" +
		"7743013902,INV-9,invoice,2024-06-15,yes\n"
	docs, err := ReadCSV(strings.NewReader(reordered))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "invoice", docs[0].Type)
	assert.Equal(t, "INV-9", docs[0].Number)
	assert.True(t, docs[0].IsSigned)
	assert.False(t, docs[0].HasAmount)

	_, err = ReadCSV(strings.NewReader("document_number,issue_date\nX,2024-01-01\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document_type")
}

func TestReadCSVRejectsBadAmountWithLineNumber(t *testing.T) {
	input := strings.Join(csvColumns, ",") + "\n" +
		"invoice,INV-1,2024-06-15,2025-06-15,100,7743013902,true\n" +
		"invoice,INV-2,2024-06-15,2025-06-15,not-a-number,7743013902,true\n"
	_, err := ReadCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestWriteResultsCSV(t *testing.T) {
	docs, err := ReadCSV(strings.NewReader(SampleCSV(today)))
	require.NoError(t, err)
	results, _, err := NewRunner(testEngine(t)).Run(context.Background(), docs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "document_number,document_type,issue_date,total_amount,status,result", lines[0])
	assert.Contains(t, lines[1], "INV-001")
	assert.Contains(t, lines[1], "OK")
	assert.Contains(t, lines[4], "ERROR")
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := ExpandInputs([]string{filepath.Join(dir, "*.csv"), filepath.Join(dir, "a.csv")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}, files)

	// literal paths that match nothing pass through for the reader to report
	files, err = ExpandInputs([]string{filepath.Join(dir, "missing.csv")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "missing.csv")}, files)
}
