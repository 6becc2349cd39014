// Package events publishes validation and routing outcomes to NATS for
// downstream consumers (dashboards, batch reporting). Publication is
// best-effort and optional: a nil connection degrades to a no-op so the
// engine and graph work unchanged without a broker.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/docflow/engine"
	"github.com/c360studio/docflow/flowgraph"
)

// Subjects for outcome publication.
const (
	SubjectVerdict = "docflow.validation.verdict"
	SubjectRoute   = "docflow.approval.route"
)

// VerdictEvent is the wire format for a validation outcome.
type VerdictEvent struct {
	DocumentNumber string    `json:"document_number"`
	DocumentType   string    `json:"document_type"`
	Kind           string    `json:"kind"`
	Messages       []string  `json:"messages"`
	Rendered       string    `json:"rendered"`
	PublishedAt    time.Time `json:"published_at"`
}

// RouteEvent is the wire format for a signature-route report.
type RouteEvent struct {
	Route       flowgraph.RouteReport `json:"route"`
	PublishedAt time.Time             `json:"published_at"`
}

// Publisher emits docflow events over a NATS connection.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

// NewPublisher creates a publisher. A nil connection is allowed and makes
// every publish a logged no-op.
func NewPublisher(nc *nats.Conn, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{nc: nc, logger: logger}
}

// PublishVerdict publishes a document's verdict.
func (p *Publisher) PublishVerdict(doc engine.Document, verdict engine.Verdict) error {
	event := VerdictEvent{
		DocumentNumber: doc.Number,
		DocumentType:   doc.Type,
		Kind:           string(verdict.Kind),
		Messages:       verdict.Messages,
		Rendered:       verdict.String(),
		PublishedAt:    time.Now(),
	}
	return p.publish(SubjectVerdict, event)
}

// PublishRoute publishes a signature-route report.
func (p *Publisher) PublishRoute(route flowgraph.RouteReport) error {
	return p.publish(SubjectRoute, RouteEvent{Route: route, PublishedAt: time.Now()})
}

func (p *Publisher) publish(subject string, event any) error {
	if p == nil || p.nc == nil {
		// Graceful degradation when no broker is configured.
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("event published", slog.String("subject", subject))
	return nil
}
