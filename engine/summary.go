package engine

import "github.com/c360studio/docflow/validate"

// Check is one entry of a validation summary.
type Check struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Summary is a per-check breakdown for one document. Unlike Evaluate it
// does not short-circuit: every applicable check is reported, which makes
// it useful for diagnosing why a document fails.
type Summary struct {
	DocumentNumber string  `json:"document_number"`
	DocumentType   string  `json:"document_type"`
	Checks         []Check `json:"checks"`
	Passed         bool    `json:"passed"`
}

// Summarize runs every applicable check independently and reports the
// outcome of each.
func (e *Engine) Summarize(doc Document) Summary {
	s := Summary{
		DocumentNumber: doc.Number,
		DocumentType:   doc.Type,
	}

	signed := Check{Name: "is_signed", Passed: doc.IsSigned, Message: "document is signed"}
	if !doc.IsSigned {
		signed.Message = "document is not signed"
	}
	s.add(signed)

	s.addResult("document_type",
		validate.DocumentType(doc.Type, e.cat.Types.Allowed, e.cat.Types.Blacklisted))
	s.addResult("required_fields",
		validate.RequiredFields(doc.fieldValues(), e.cat.RequiredFor(doc.Type)))
	s.addResult("issue_date", validate.DateFormat(doc.IssueDate))

	if doc.ExpiryDate != "" {
		s.addResult("expiry_date", validate.ExpiryAfterIssue(doc.IssueDate, doc.ExpiryDate))
	}
	if doc.INN != "" {
		s.addResult("inn", validate.INN(doc.INN, e.cat.INN.AllowedLengths))
	}
	if doc.HasAmount {
		s.addResult("amount",
			validate.Amount(doc.Amount, e.cat.Thresholds.MinAmount, e.cat.Thresholds.MaxAmount))
	}

	s.Passed = true
	for _, c := range s.Checks {
		if !c.Passed {
			s.Passed = false
			break
		}
	}
	return s
}

func (s *Summary) add(c Check) {
	s.Checks = append(s.Checks, c)
}

func (s *Summary) addResult(name string, res validate.Result) {
	s.add(Check{Name: name, Passed: res.Valid, Message: res.Detail})
}
