// Package flowgraph models the organizational approval graph: who works
// where, which departments a document type must traverse, and who may
// sign what. The graph is built once from an entity snapshot and is
// read-only afterwards, which permits unlimited concurrent readers.
package flowgraph

// Department is an organizational unit. Name is the unique key.
type Department struct {
	Name         string   `yaml:"name" json:"name"`
	Head         string   `yaml:"head" json:"head"`
	Level        int      `yaml:"level" json:"level"`
	CanSignTypes []string `yaml:"can_sign_types" json:"can_sign_types"`
}

// CanSignType reports whether the department may sign the given document
// type. An empty list means no restriction.
func (d Department) CanSignType(docType string) bool {
	if len(d.CanSignTypes) == 0 {
		return true
	}
	for _, t := range d.CanSignTypes {
		if t == docType {
			return true
		}
	}
	return false
}

// Employee is an organization member. Name is the unique key.
type Employee struct {
	Name       string `yaml:"name" json:"name"`
	Department string `yaml:"department" json:"department"`
	Position   string `yaml:"position" json:"position"`
	CanSign    bool   `yaml:"can_sign" json:"can_sign"`
	// MaxSignAmount is the per-signature ceiling; 0 means unlimited.
	MaxSignAmount float64 `yaml:"max_sign_amount" json:"max_sign_amount"`
}

// CanSignDocument reports whether the employee may sign a document of the
// given amount.
func (e Employee) CanSignDocument(amount float64) bool {
	if !e.CanSign {
		return false
	}
	if e.MaxSignAmount == 0 {
		return true
	}
	return amount <= e.MaxSignAmount
}

// DocumentType describes a class of documents. Code is the unique key.
type DocumentType struct {
	Code               string `yaml:"code" json:"code"`
	Description        string `yaml:"description" json:"description"`
	RequiredSignatures int    `yaml:"required_signatures" json:"required_signatures"`
	// ApprovalChain lists the departments the type must traverse, in
	// order.
	ApprovalChain []string `yaml:"approval_chain" json:"approval_chain"`
}

// Document is a document as it appears in the approval graph. Number is
// the unique key.
type Document struct {
	Number     string   `yaml:"document_number" json:"document_number"`
	Type       string   `yaml:"document_type" json:"document_type"`
	Author     string   `yaml:"author" json:"author"`
	Department string   `yaml:"department" json:"department"`
	IssueDate  string   `yaml:"issue_date" json:"issue_date"`
	Amount     float64  `yaml:"total_amount" json:"total_amount"`
	SignedBy   []string `yaml:"signed_by" json:"signed_by"`
	Status     string   `yaml:"status" json:"status"`
}

// AddSignature records a signature, ignoring duplicates. This mutates the
// entity value only; to reflect new signatures in a graph, rebuild it and
// swap the reference.
func (d *Document) AddSignature(employeeName string) {
	for _, s := range d.SignedBy {
		if s == employeeName {
			return
		}
	}
	d.SignedBy = append(d.SignedBy, employeeName)
}

// IsFullySigned reports whether the document carries at least the
// required number of signatures.
func (d Document) IsFullySigned(required int) bool {
	return len(d.SignedBy) >= required
}
