// Package api exposes a read-only HTTP surface over the validation
// engine and the approval graph. It serves verdict strings and plain
// query results only; no handler mutates the catalog or the graph beyond
// the explicit catalog reload endpoint.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/docflow/catalog"
	"github.com/c360studio/docflow/engine"
	"github.com/c360studio/docflow/events"
	"github.com/c360studio/docflow/flowgraph"
	"github.com/c360studio/docflow/metrics"
)

// Server wires the engine, graph, and publisher behind HTTP handlers.
type Server struct {
	echo   *echo.Echo
	store  *catalog.Store
	graph  *flowgraph.Graph
	pub    *events.Publisher
	logger *slog.Logger
}

// New creates the HTTP server. The publisher may be nil.
func New(store *catalog.Store, graph *flowgraph.Graph, pub *events.Publisher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	s := &Server{echo: e, store: store, graph: graph, pub: pub, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiRoutes := s.echo.Group("/api")

	apiRoutes.POST("/validate", s.validateHandler)
	apiRoutes.POST("/validate/summary", s.summaryHandler)
	apiRoutes.POST("/catalog/reload", s.reloadHandler)

	apiRoutes.GET("/documents/:number/route", s.routeHandler)
	apiRoutes.GET("/documents/:number/approval-chain", s.approvalChainHandler)
	apiRoutes.GET("/documents/:number/signers", s.signersHandler)
	apiRoutes.GET("/departments/:name/documents", s.departmentDocumentsHandler)
	apiRoutes.GET("/departments/:name/employees", s.departmentEmployeesHandler)
	apiRoutes.GET("/entities/:id/related", s.relatedHandler)
	apiRoutes.GET("/graph/statistics", s.statisticsHandler)
	apiRoutes.GET("/graph/report", s.reportHandler)
}

// Handler returns the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves HTTP on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", slog.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// newEngine builds an engine over the currently cached catalog. A missing
// catalog is a configuration error surfaced as 503, never folded into a
// document verdict.
func (s *Server) newEngine() (*engine.Engine, error) {
	cat, err := s.store.Catalog()
	if err != nil {
		return nil, err
	}
	return engine.New(cat, engine.WithLogger(s.logger)), nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type verdictResponse struct {
	Kind     string   `json:"kind"`
	Messages []string `json:"messages"`
	Rendered string   `json:"rendered"`
}

func (s *Server) validateHandler(c echo.Context) error {
	var doc engine.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid document payload"})
	}

	eng, err := s.newEngine()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	}

	verdict := eng.Evaluate(doc)
	metrics.ObserveVerdict(verdict)
	if err := s.pub.PublishVerdict(doc, verdict); err != nil {
		s.logger.Warn("verdict publish failed", slog.String("error", err.Error()))
	}

	return c.JSON(http.StatusOK, verdictResponse{
		Kind:     string(verdict.Kind),
		Messages: verdict.Messages,
		Rendered: verdict.String(),
	})
}

func (s *Server) summaryHandler(c echo.Context) error {
	var doc engine.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid document payload"})
	}

	eng, err := s.newEngine()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, eng.Summarize(doc))
}

func (s *Server) reloadHandler(c echo.Context) error {
	if _, err := s.store.Reload(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) routeHandler(c echo.Context) error {
	route := s.graph.SignatureRoute(c.Param("number"))
	if route.Found {
		if err := s.pub.PublishRoute(route); err != nil {
			s.logger.Warn("route publish failed", slog.String("error", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, route)
}

func (s *Server) approvalChainHandler(c echo.Context) error {
	return s.listResponse(c, s.graph.ApprovalChain(c.Param("number")))
}

func (s *Server) signersHandler(c echo.Context) error {
	return s.listResponse(c, s.graph.EligibleSigners(c.Param("number")))
}

func (s *Server) departmentDocumentsHandler(c echo.Context) error {
	return s.listResponse(c, s.graph.DocumentsByDepartment(c.Param("name")))
}

func (s *Server) departmentEmployeesHandler(c echo.Context) error {
	return s.listResponse(c, s.graph.EmployeesByDepartment(c.Param("name")))
}

func (s *Server) relatedHandler(c echo.Context) error {
	return s.listResponse(c, s.graph.RelatedEntities(c.Param("id")))
}

func (s *Server) statisticsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.graph.Statistics())
}

func (s *Server) reportHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.graph.Report())
}

// listResponse renders a possibly-nil id list as a JSON array. Absent
// nodes and empty relation sets look identical here on purpose; callers
// needing the distinction use the route report's found flag.
func (s *Server) listResponse(c echo.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, ids)
}
