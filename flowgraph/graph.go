package flowgraph

import "log/slog"

// NodeKind is the closed set of node variants.
type NodeKind string

const (
	KindDepartment   NodeKind = "department"
	KindEmployee     NodeKind = "employee"
	KindDocument     NodeKind = "document"
	KindDocumentType NodeKind = "document_type"
)

// Relation is the closed set of edge tags.
type Relation string

const (
	// RelWorksIn connects an employee to their department.
	RelWorksIn Relation = "works_in"

	// RelCreatedIn connects a document to its originating department.
	RelCreatedIn Relation = "created_in"

	// RelSignedBy connects a document to an employee who signed it.
	RelSignedBy Relation = "signed_by"

	// RelIsType connects a document to its document type.
	RelIsType Relation = "is_type"

	// RelApprovalRequired connects a document type to a department in its
	// approval chain.
	RelApprovalRequired Relation = "approval_required"

	// RelCanSign connects a department to a document type it may sign.
	RelCanSign Relation = "can_sign"

	// RelManagedBy connects a department to its head employee.
	RelManagedBy Relation = "managed_by"
)

// TypeNodeID returns the graph node id for a document-type code. Type
// nodes are prefixed so a type code can never collide with a department,
// employee, or document key.
func TypeNodeID(code string) string {
	return "type_" + code
}

// node carries the variant tag plus the owning entity. Exactly one entity
// pointer is set, matching kind.
type node struct {
	id   string
	kind NodeKind

	dept    *Department
	emp     *Employee
	doc     *Document
	docType *DocumentType
}

// edge is a tagged directed connection between two existing nodes.
type edge struct {
	from, to string
	rel      Relation
}

// BuildReport summarizes a graph construction pass. SkippedEdges counts
// edges dropped because an endpoint was absent from the snapshot — a
// tolerated condition, but one worth flagging to catch authoring bugs.
type BuildReport struct {
	Nodes        int `json:"nodes"`
	Edges        int `json:"edges"`
	SkippedEdges int `json:"skipped_edges"`
}

// Graph is a directed, typed multi-relation graph. Out-edges preserve
// insertion order, which makes approval chains come back in declared
// order. All query results are copies; nothing mutates a built graph.
type Graph struct {
	nodes  map[string]*node
	out    map[string][]edge
	in     map[string][]edge
	report BuildReport
	logger *slog.Logger
}

// BuildOption configures graph construction.
type BuildOption func(*Graph)

// WithLogger sets the logger used to flag skipped edges.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(g *Graph) { g.logger = logger }
}

// Build constructs the approval graph from an entity snapshot in a single
// pass. Edges whose endpoints are missing from the snapshot are skipped,
// logged, and counted in the build report.
func Build(departments []Department, employees []Employee, documents []Document, docTypes []DocumentType, opts ...BuildOption) *Graph {
	g := &Graph{
		nodes:  make(map[string]*node),
		out:    make(map[string][]edge),
		in:     make(map[string][]edge),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	for i := range departments {
		d := &departments[i]
		g.addNode(&node{id: d.Name, kind: KindDepartment, dept: d})
	}
	for i := range employees {
		e := &employees[i]
		g.addNode(&node{id: e.Name, kind: KindEmployee, emp: e})
	}
	for i := range documents {
		d := &documents[i]
		g.addNode(&node{id: d.Number, kind: KindDocument, doc: d})
	}
	for i := range docTypes {
		t := &docTypes[i]
		g.addNode(&node{id: TypeNodeID(t.Code), kind: KindDocumentType, docType: t})
	}

	for _, e := range employees {
		g.addEdge(e.Name, e.Department, RelWorksIn)
	}
	for _, d := range documents {
		g.addEdge(d.Number, d.Department, RelCreatedIn)
		for _, signer := range d.SignedBy {
			g.addEdge(d.Number, signer, RelSignedBy)
		}
		g.addEdge(d.Number, TypeNodeID(d.Type), RelIsType)
	}
	for _, t := range docTypes {
		for _, dept := range t.ApprovalChain {
			g.addEdge(TypeNodeID(t.Code), dept, RelApprovalRequired)
		}
	}
	for _, d := range departments {
		for _, code := range d.CanSignTypes {
			g.addEdge(d.Name, TypeNodeID(code), RelCanSign)
		}
		g.addEdge(d.Name, d.Head, RelManagedBy)
	}

	g.report.Nodes = len(g.nodes)
	return g
}

func (g *Graph) addNode(n *node) {
	g.nodes[n.id] = n
}

// addEdge links two nodes, or drops the edge when either endpoint is
// absent. Dropping is deliberate tolerance for partial snapshots, not an
// error, but each drop is logged so catalog authors can spot dangling
// references.
func (g *Graph) addEdge(from, to string, rel Relation) {
	if _, okFrom := g.nodes[from]; !okFrom {
		g.skip(from, to, rel)
		return
	}
	if _, okTo := g.nodes[to]; !okTo {
		g.skip(from, to, rel)
		return
	}
	e := edge{from: from, to: to, rel: rel}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	g.report.Edges++
}

func (g *Graph) skip(from, to string, rel Relation) {
	g.report.SkippedEdges++
	g.logger.Warn("skipping edge with missing endpoint",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("relation", string(rel)))
}

// Contains reports whether the node exists. It is the way to tell "node
// absent" apart from "node present with no relations", since queries
// return empty results in both cases.
func (g *Graph) Contains(id string) bool {
	_, present := g.nodes[id]
	return present
}

// Report returns the build report captured during construction.
func (g *Graph) Report() BuildReport {
	return g.report
}
