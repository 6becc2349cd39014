// Package metrics exposes Prometheus instrumentation for the validation
// engine, batch runner, and approval graph.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/c360studio/docflow/batch"
	"github.com/c360studio/docflow/engine"
	"github.com/c360studio/docflow/flowgraph"
)

var (
	verdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docflow_verdicts_total",
		Help: "Validation verdicts produced, by kind.",
	}, []string{"kind"})

	batchRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docflow_batch_runs_total",
		Help: "Completed batch validation runs.",
	})

	batchDocumentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docflow_batch_documents_total",
		Help: "Documents processed across batch runs.",
	})

	graphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "docflow_graph_nodes",
		Help: "Nodes in the current approval graph.",
	})

	graphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "docflow_graph_edges",
		Help: "Edges in the current approval graph.",
	})
)

// ObserveVerdict records one verdict.
func ObserveVerdict(v engine.Verdict) {
	verdictsTotal.WithLabelValues(string(v.Kind)).Inc()
}

// ObserveBatch records a completed batch run.
func ObserveBatch(s batch.Summary) {
	batchRunsTotal.Inc()
	batchDocumentsTotal.Add(float64(s.Total))
}

// SetGraphSize records the size of the serving graph. Call after every
// build-and-swap.
func SetGraphSize(r flowgraph.BuildReport) {
	graphNodes.Set(float64(r.Nodes))
	graphEdges.Set(float64(r.Edges))
}
