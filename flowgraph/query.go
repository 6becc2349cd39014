package flowgraph

// RouteReport describes where a document stands on its signature route.
// All slices are fresh copies; mutating them cannot affect the graph.
type RouteReport struct {
	Document string `json:"document"`
	// Found distinguishes an absent document node from one with an empty
	// route.
	Found           bool     `json:"found"`
	ApprovalChain   []string `json:"approval_chain"`
	AlreadySigned   []string `json:"already_signed"`
	EligibleSigners []string `json:"eligible_signers"`
	NextSigners     []string `json:"next_signers"`
	IsComplete      bool     `json:"is_complete"`
}

// Statistics summarizes graph shape.
type Statistics struct {
	TotalNodes    int              `json:"total_nodes"`
	TotalEdges    int              `json:"total_edges"`
	NodeKinds     map[NodeKind]int `json:"node_kinds"`
	AverageDegree float64          `json:"average_degree"`
}

// RelatedEntities returns the union of direct predecessors and direct
// successors of a node, deduplicated, in first-seen order. Absent nodes
// yield an empty result.
func (g *Graph) RelatedEntities(id string) []string {
	if !g.Contains(id) {
		return nil
	}
	seen := make(map[string]bool)
	var related []string
	for _, e := range g.in[id] {
		if !seen[e.from] {
			seen[e.from] = true
			related = append(related, e.from)
		}
	}
	for _, e := range g.out[id] {
		if !seen[e.to] {
			seen[e.to] = true
			related = append(related, e.to)
		}
	}
	return related
}

// typeOf returns the document-type node reached from a document via its
// is_type edge, or nil.
func (g *Graph) typeOf(documentNumber string) *node {
	for _, e := range g.out[documentNumber] {
		if e.rel != RelIsType {
			continue
		}
		if n := g.nodes[e.to]; n != nil && n.kind == KindDocumentType {
			return n
		}
	}
	return nil
}

// ApprovalChain returns the departments the document's type must
// traverse, in the order declared on the type. Empty when the document or
// its type node is absent.
func (g *Graph) ApprovalChain(documentNumber string) []string {
	if !g.Contains(documentNumber) {
		return nil
	}
	typeNode := g.typeOf(documentNumber)
	if typeNode == nil {
		return nil
	}
	var chain []string
	for _, e := range g.out[typeNode.id] {
		if e.rel != RelApprovalRequired {
			continue
		}
		if n := g.nodes[e.to]; n != nil && n.kind == KindDepartment {
			chain = append(chain, e.to)
		}
	}
	return chain
}

// EligibleSigners returns the employees who may sign the document: the
// heads (managed_by targets) of each department on the approval chain
// whose signing rights cover the document amount. The result is the
// deduplicated union across the chain.
func (g *Graph) EligibleSigners(documentNumber string) []string {
	docNode := g.nodes[documentNumber]
	if docNode == nil || docNode.doc == nil {
		return nil
	}
	amount := docNode.doc.Amount

	seen := make(map[string]bool)
	var signers []string
	for _, dept := range g.ApprovalChain(documentNumber) {
		for _, e := range g.out[dept] {
			if e.rel != RelManagedBy {
				continue
			}
			n := g.nodes[e.to]
			if n == nil || n.kind != KindEmployee || seen[n.id] {
				continue
			}
			if n.emp.CanSignDocument(amount) {
				seen[n.id] = true
				signers = append(signers, n.id)
			}
		}
	}
	return signers
}

// signedBy returns the employees connected to the document via signed_by
// edges.
func (g *Graph) signedBy(documentNumber string) []string {
	var signed []string
	for _, e := range g.out[documentNumber] {
		if e.rel != RelSignedBy {
			continue
		}
		if n := g.nodes[e.to]; n != nil && n.kind == KindEmployee {
			signed = append(signed, e.to)
		}
	}
	return signed
}

// SignatureRoute composes the approval chain, collected signatures, and
// eligible signers into a route report. A document is complete when it
// has at least as many signatures as chain steps, regardless of which
// employees signed. An absent document yields an empty report with
// Found=false.
func (g *Graph) SignatureRoute(documentNumber string) RouteReport {
	if !g.Contains(documentNumber) {
		return RouteReport{Document: documentNumber}
	}

	chain := g.ApprovalChain(documentNumber)
	signed := g.signedBy(documentNumber)
	eligible := g.EligibleSigners(documentNumber)

	alreadySigned := make(map[string]bool, len(signed))
	for _, s := range signed {
		alreadySigned[s] = true
	}
	var next []string
	for _, s := range eligible {
		if !alreadySigned[s] {
			next = append(next, s)
		}
	}

	return RouteReport{
		Document:        documentNumber,
		Found:           true,
		ApprovalChain:   chain,
		AlreadySigned:   signed,
		EligibleSigners: eligible,
		NextSigners:     next,
		IsComplete:      len(signed) >= len(chain),
	}
}

// predecessorsByKind scans a department's predecessors filtered by node
// kind and relation. A generic predecessor scan is not enough here: a
// department node has predecessors of several kinds and relations.
func (g *Graph) predecessorsByKind(departmentName string, kind NodeKind, rel Relation) []string {
	if !g.Contains(departmentName) {
		return nil
	}
	var result []string
	for _, e := range g.in[departmentName] {
		if e.rel != rel {
			continue
		}
		if n := g.nodes[e.from]; n != nil && n.kind == kind {
			result = append(result, e.from)
		}
	}
	return result
}

// DocumentsByDepartment returns the documents created in a department.
func (g *Graph) DocumentsByDepartment(departmentName string) []string {
	return g.predecessorsByKind(departmentName, KindDocument, RelCreatedIn)
}

// EmployeesByDepartment returns the employees working in a department.
func (g *Graph) EmployeesByDepartment(departmentName string) []string {
	return g.predecessorsByKind(departmentName, KindEmployee, RelWorksIn)
}

// Statistics returns node/edge counts, a node-kind histogram, and the
// mean node degree (0 for an empty graph).
func (g *Graph) Statistics() Statistics {
	stats := Statistics{
		TotalNodes: len(g.nodes),
		NodeKinds:  make(map[NodeKind]int),
	}
	for _, n := range g.nodes {
		stats.NodeKinds[n.kind]++
	}
	degreeSum := 0
	for id := range g.nodes {
		degreeSum += len(g.in[id]) + len(g.out[id])
	}
	stats.TotalEdges = g.report.Edges
	if stats.TotalNodes > 0 {
		stats.AverageDegree = float64(degreeSum) / float64(stats.TotalNodes)
	}
	return stats
}
