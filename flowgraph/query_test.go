package flowgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// financeScenario is the minimal single-department routing setup: one
// department headed by an eligible signer and one unsigned invoice.
func financeScenario() *Graph {
	return Build(
		[]Department{{Name: "Finance", Head: "A", Level: 1, CanSignTypes: []string{"invoice"}}},
		[]Employee{{Name: "A", Department: "Finance", Position: "Head", CanSign: true, MaxSignAmount: 500000}},
		[]Document{{Number: "INV-1", Type: "invoice", Department: "Finance", Amount: 100000}},
		[]DocumentType{{Code: "invoice", RequiredSignatures: 1, ApprovalChain: []string{"Finance"}}},
	)
}

func TestFinanceScenario(t *testing.T) {
	g := financeScenario()

	assert.Equal(t, []string{"Finance"}, g.ApprovalChain("INV-1"))
	assert.Equal(t, []string{"A"}, g.EligibleSigners("INV-1"))

	route := g.SignatureRoute("INV-1")
	assert.True(t, route.Found)
	assert.False(t, route.IsComplete)
	assert.Equal(t, []string{"A"}, route.NextSigners)
	assert.Empty(t, route.AlreadySigned)
}

func TestRelatedEntities(t *testing.T) {
	g := SampleSnapshot().Build()

	related := g.RelatedEntities("Finance")
	assert.Contains(t, related, "Maria Ivanova") // works_in / managed_by
	assert.Contains(t, related, "Dmitry Kozlov") // works_in
	assert.Contains(t, related, "INV-2024-0001") // created_in
	assert.Contains(t, related, TypeNodeID("invoice"))

	// dedup: Maria both works in and heads Finance, she appears once
	count := 0
	for _, id := range related {
		if id == "Maria Ivanova" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestApprovalChainOrder(t *testing.T) {
	g := SampleSnapshot().Build()

	// chains come back in the order declared on the document type
	assert.Equal(t, []string{"Legal", "Procurement", "Executive Office"}, g.ApprovalChain("CTR-2024-0002"))
	assert.Equal(t, []string{"Legal", "Finance"}, g.ApprovalChain("ACT-2024-0003"))
}

func TestEligibleSignersRespectsAmountCeiling(t *testing.T) {
	g := SampleSnapshot().Build()

	// CTR-2024-0002 is 750000: Legal's head (ceiling 1M) and the CEO
	// (unlimited) qualify; Procurement's head (ceiling 300k) does not
	signers := g.EligibleSigners("CTR-2024-0002")
	assert.ElementsMatch(t, []string{"Sergey Petrov", "Alexander Smirnov"}, signers)
}

func TestEligibleSignersUnlimitedCeiling(t *testing.T) {
	g := Build(
		[]Department{{Name: "Board", Head: "CEO"}},
		[]Employee{{Name: "CEO", Department: "Board", CanSign: true, MaxSignAmount: 0}},
		[]Document{{Number: "BIG-1", Type: "deal", Department: "Board", Amount: 1e12}},
		[]DocumentType{{Code: "deal", ApprovalChain: []string{"Board"}}},
	)
	assert.Equal(t, []string{"CEO"}, g.EligibleSigners("BIG-1"))
}

func TestSignatureRouteCompleteness(t *testing.T) {
	g := SampleSnapshot().Build()

	// ACT-2024-0003 has two signatures against a two-step chain;
	// completeness counts signatures, not which employees provided them
	route := g.SignatureRoute("ACT-2024-0003")
	require.True(t, route.Found)
	assert.True(t, route.IsComplete)
	assert.Len(t, route.AlreadySigned, 2)

	// INV-2024-0001 has one of two required chain steps signed
	route = g.SignatureRoute("INV-2024-0001")
	require.True(t, route.Found)
	assert.False(t, route.IsComplete)
	assert.Equal(t, []string{"Maria Ivanova"}, route.AlreadySigned)
	// Maria already signed, so she is eligible but not next
	assert.Contains(t, route.EligibleSigners, "Maria Ivanova")
	assert.NotContains(t, route.NextSigners, "Maria Ivanova")
	assert.Contains(t, route.NextSigners, "Alexander Smirnov")
}

func TestQueriesOnAbsentNodes(t *testing.T) {
	g := SampleSnapshot().Build()

	assert.Empty(t, g.RelatedEntities("nope"))
	assert.Empty(t, g.ApprovalChain("nope"))
	assert.Empty(t, g.EligibleSigners("nope"))
	assert.Empty(t, g.DocumentsByDepartment("nope"))
	assert.Empty(t, g.EmployeesByDepartment("nope"))

	route := g.SignatureRoute("nope")
	assert.False(t, route.Found)
	assert.Empty(t, route.ApprovalChain)
	assert.False(t, route.IsComplete)
}

func TestByDepartmentFiltersKindAndRelation(t *testing.T) {
	g := SampleSnapshot().Build()

	// Finance has document, employee, and type predecessors; the scans
	// must separate them by relation
	docs := g.DocumentsByDepartment("Finance")
	assert.ElementsMatch(t, []string{"INV-2024-0001", "RCP-2024-0004"}, docs)

	emps := g.EmployeesByDepartment("Finance")
	assert.ElementsMatch(t, []string{"Maria Ivanova", "Dmitry Kozlov"}, emps)
}

func TestStatistics(t *testing.T) {
	g := SampleSnapshot().Build()
	stats := g.Statistics()

	assert.Equal(t, 18, stats.TotalNodes)
	assert.Equal(t, g.Report().Edges, stats.TotalEdges)
	assert.Equal(t, 4, stats.NodeKinds[KindDepartment])
	assert.Equal(t, 6, stats.NodeKinds[KindEmployee])
	assert.Equal(t, 4, stats.NodeKinds[KindDocument])
	assert.Equal(t, 4, stats.NodeKinds[KindDocumentType])
	assert.InDelta(t, float64(2*stats.TotalEdges)/18, stats.AverageDegree, 1e-9)
}

func TestStatisticsEmptyGraph(t *testing.T) {
	g := Build(nil, nil, nil, nil)
	stats := g.Statistics()

	assert.Zero(t, stats.TotalNodes)
	assert.Zero(t, stats.TotalEdges)
	assert.Zero(t, stats.AverageDegree) // no division by zero
}

func TestDocumentSignatureHelpers(t *testing.T) {
	doc := Document{Number: "D-1"}
	doc.AddSignature("A")
	doc.AddSignature("A")
	doc.AddSignature("B")
	assert.Equal(t, []string{"A", "B"}, doc.SignedBy)
	assert.True(t, doc.IsFullySigned(2))
	assert.False(t, doc.IsFullySigned(3))
}
