// Package engine evaluates business documents against a rule catalog.
// Evaluation runs ordered tiers (critical filters, then hard validation,
// then soft validation) and is a pure function of the document, the
// catalog, and an injected reference date.
package engine

// Document is the value consumed by the engine. It is constructed by the
// caller (batch loader, CLI, or API), evaluated exactly once per call,
// and never mutated by the engine.
type Document struct {
	Type       string  `json:"document_type"`
	Number     string  `json:"document_number"`
	IssueDate  string  `json:"issue_date"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	Amount     float64 `json:"total_amount"`
	// HasAmount distinguishes an explicit zero amount from no amount at
	// all; amount checks only run when it is set.
	HasAmount bool   `json:"has_amount"`
	INN       string `json:"inn,omitempty"`
	IsSigned  bool   `json:"is_signed"`
}

// fieldValues exposes the document fields by their catalog names for the
// required-fields check. Unset optional values are absent from the map.
func (d Document) fieldValues() map[string]any {
	values := map[string]any{
		"document_type":   d.Type,
		"document_number": d.Number,
		"issue_date":      d.IssueDate,
	}
	if d.ExpiryDate != "" {
		values["expiry_date"] = d.ExpiryDate
	}
	if d.HasAmount {
		values["total_amount"] = d.Amount
	}
	if d.INN != "" {
		values["inn"] = d.INN
	}
	return values
}
