// Package batch validates many documents in one run. CSV files are
// decoded into documents, evaluated with bounded concurrency, and
// summarized by verdict kind. The per-document engine call stays
// single-threaded and pure; the runner only fans it out.
package batch

import (
	"context"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/docflow/engine"
)

// DefaultConcurrency bounds the evaluation fan-out when none is set.
const DefaultConcurrency = 8

// Result pairs one document with its verdict.
type Result struct {
	Index    int             `json:"index"`
	Document engine.Document `json:"document"`
	Verdict  engine.Verdict  `json:"verdict"`
}

// Summary aggregates one run by verdict kind.
type Summary struct {
	RunID    string `json:"run_id"`
	Total    int    `json:"total"`
	OK       int    `json:"ok"`
	Warnings int    `json:"warnings"`
	Errors   int    `json:"errors"`
}

// Runner evaluates document batches against one engine.
type Runner struct {
	eng         *engine.Engine
	logger      *slog.Logger
	concurrency int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency bounds the number of documents evaluated in parallel.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets the runner logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a batch runner over the given engine.
func NewRunner(eng *engine.Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		eng:         eng,
		logger:      slog.Default(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every document and returns results in input order plus a
// summary. Evaluation is embarrassingly parallel: the engine mutates
// nothing, so documents fan out across workers safely.
func (r *Runner) Run(ctx context.Context, docs []engine.Document) ([]Result, Summary, error) {
	results := make([]Result, len(docs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)
	for i, doc := range docs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Index: i, Document: doc, Verdict: r.eng.Evaluate(doc)}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{RunID: uuid.New().String(), Total: len(docs)}
	for _, res := range results {
		switch res.Verdict.Kind {
		case engine.KindError:
			summary.Errors++
		case engine.KindWarning:
			summary.Warnings++
		default:
			summary.OK++
		}
	}

	r.logger.Info("batch run complete",
		slog.String("run_id", summary.RunID),
		slog.Int("total", summary.Total),
		slog.Int("ok", summary.OK),
		slog.Int("warnings", summary.Warnings),
		slog.Int("errors", summary.Errors))
	return results, summary, nil
}

// ExpandInputs resolves doublestar glob patterns into a sorted,
// deduplicated file list. Literal paths pass through unchanged.
func ExpandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		if matches == nil {
			// Not a glob hit; keep the literal path so missing files
			// surface as read errors instead of silently vanishing.
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
