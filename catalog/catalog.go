// Package catalog loads and serves the externally configurable rule
// catalog that drives document validation: critical rules, type
// allow/blacklists, required-field sets, thresholds, and message
// templates. A catalog is loaded once, validated exhaustively, and is
// immutable thereafter; reloading is an explicit operation that swaps the
// cached reference atomically.
package catalog

import "log/slog"

// DefaultLargeAmountFraction is the fraction of the amount ceiling at
// which the large-amount warning fires when the catalog does not set one.
const DefaultLargeAmountFraction = 0.8

// CriticalRules are the fail-fast switches of the validation engine.
type CriticalRules struct {
	MustBeSigned           bool
	ExpiryDateMustBeFuture bool
	MustHaveINN            bool
}

// TypePolicy holds the document-type allow-list and blacklist.
// The blacklist takes precedence over the allow-list.
type TypePolicy struct {
	Allowed     []string
	Blacklisted []string
}

// INNPolicy constrains tax identifiers.
type INNPolicy struct {
	AllowedLengths []int
}

// Thresholds holds the numeric limits for amount and expiry checks.
type Thresholds struct {
	MinAmount           float64
	MaxAmount           float64
	ExpiryWarningDays   int
	LargeAmountFraction float64
}

// Messages holds the human-readable templates keyed by outcome. All ten
// keys are required at load time.
type Messages struct {
	ErrorNotSigned      string
	ErrorInvalidType    string
	ErrorMissingFields  string
	ErrorInvalidDate    string
	ErrorExpired        string
	ErrorInvalidINN     string
	ErrorAmountRange    string
	WarningExpiringSoon string
	WarningLargeAmount  string
	Success             string
}

// Catalog is the validated, immutable rule catalog.
type Catalog struct {
	Critical       CriticalRules
	Types          TypePolicy
	RequiredFields map[string][]string
	INN            INNPolicy
	Thresholds     Thresholds
	Messages       Messages
}

// IsBlacklisted reports whether the type code is blacklisted.
func (c *Catalog) IsBlacklisted(docType string) bool {
	for _, t := range c.Types.Blacklisted {
		if t == docType {
			return true
		}
	}
	return false
}

// IsAllowed reports whether the type code appears on the allow-list.
// Blacklisting is checked separately and wins.
func (c *Catalog) IsAllowed(docType string) bool {
	for _, t := range c.Types.Allowed {
		if t == docType {
			return true
		}
	}
	return false
}

// RequiredFor returns the required-field list for a type code, or nil
// when the catalog defines none for it.
func (c *Catalog) RequiredFor(docType string) []string {
	return c.RequiredFields[docType]
}

// Lint reports catalog authoring problems that are not fatal: type codes
// with required-field sets that are missing from the allow-list. Each
// finding is also logged at WARN.
func (c *Catalog) Lint(logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}
	var findings []string
	for docType := range c.RequiredFields {
		if !c.IsAllowed(docType) {
			finding := "required_fields references type not on the allow-list: " + docType
			findings = append(findings, finding)
			logger.Warn("catalog authoring issue",
				slog.String("type", docType),
				slog.String("issue", "required_fields type not allowed"))
		}
	}
	return findings
}
