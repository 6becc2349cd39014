package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/docflow/catalog"
	"github.com/c360studio/docflow/validate"
)

// Engine evaluates documents against an immutable rule catalog. It holds
// no mutable state, so a single Engine serves unlimited concurrent
// callers.
type Engine struct {
	cat    *catalog.Catalog
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock. Time-dependent checks use the
// injected clock exclusively, which keeps evaluations reproducible.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine over a validated catalog.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:    cat,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the tiered rule evaluation and returns exactly one
// verdict. Tier 1 (critical filters) and tier 2 (hard validation) halt on
// the first failing check; tier 3 (soft validation) accumulates warnings.
func (e *Engine) Evaluate(doc Document) Verdict {
	today := e.now()

	if v, halted := e.criticalFilters(doc); halted {
		return v
	}
	if v, halted := e.hardValidation(doc, today); halted {
		return v
	}
	if warnings := e.softValidation(doc, today); len(warnings) > 0 {
		return warningVerdict(warnings)
	}
	return okVerdict(fmt.Sprintf("%s for %q document", e.cat.Messages.Success, doc.Type))
}

// criticalFilters is tier 1. The order signed → type → required fields is
// fixed; the first failure determines the message and later checks never
// run.
func (e *Engine) criticalFilters(doc Document) (Verdict, bool) {
	msgs := e.cat.Messages

	if e.cat.Critical.MustBeSigned && !doc.IsSigned {
		return errorVerdict(msgs.ErrorNotSigned), true
	}

	if res := validate.DocumentType(doc.Type, e.cat.Types.Allowed, e.cat.Types.Blacklisted); !res.Valid {
		return errorVerdict(compose(msgs.ErrorInvalidType, res.Detail)), true
	}

	if res := validate.RequiredFields(doc.fieldValues(), e.cat.RequiredFor(doc.Type)); !res.Valid {
		return errorVerdict(compose(msgs.ErrorMissingFields, res.Detail)), true
	}

	return Verdict{}, false
}

// hardValidation is tier 2. Each sub-check halts on first failure in the
// listed order.
func (e *Engine) hardValidation(doc Document, today time.Time) (Verdict, bool) {
	msgs := e.cat.Messages

	if res := validate.DateFormat(doc.IssueDate); !res.Valid {
		return errorVerdict(compose(msgs.ErrorInvalidDate, res.Detail)), true
	}

	if doc.ExpiryDate != "" {
		if res := validate.DateFormat(doc.ExpiryDate); !res.Valid {
			return errorVerdict(compose(msgs.ErrorInvalidDate, res.Detail)), true
		}
		if res := validate.ExpiryAfterIssue(doc.IssueDate, doc.ExpiryDate); !res.Valid {
			return errorVerdict(res.Detail), true
		}
		if e.cat.Critical.ExpiryDateMustBeFuture {
			if res := validate.DateNotPast(doc.ExpiryDate, today); !res.Valid {
				return errorVerdict(compose(msgs.ErrorExpired, res.Detail)), true
			}
		}
	}

	if e.cat.Critical.MustHaveINN && doc.INN != "" {
		if res := validate.INN(doc.INN, e.cat.INN.AllowedLengths); !res.Valid {
			return errorVerdict(compose(msgs.ErrorInvalidINN, res.Detail)), true
		}
	}

	if doc.HasAmount {
		if res := validate.Amount(doc.Amount, e.cat.Thresholds.MinAmount, e.cat.Thresholds.MaxAmount); !res.Valid {
			return errorVerdict(compose(msgs.ErrorAmountRange, res.Detail)), true
		}
	}

	return Verdict{}, false
}

// softValidation is tier 3. Both checks are independent; zero, one, or
// two warnings may fire, expiry before amount.
func (e *Engine) softValidation(doc Document, today time.Time) []string {
	msgs := e.cat.Messages
	var warnings []string

	if doc.ExpiryDate != "" {
		if res := validate.ExpiryWarning(doc.ExpiryDate, e.cat.Thresholds.ExpiryWarningDays, today); res.Valid {
			warnings = append(warnings, compose(msgs.WarningExpiringSoon, res.Detail))
		}
	}

	if doc.HasAmount {
		if res := validate.LargeAmountWarning(doc.Amount, e.cat.Thresholds.MaxAmount, e.cat.Thresholds.LargeAmountFraction); res.Valid {
			warnings = append(warnings, compose(msgs.WarningLargeAmount, res.Detail))
		}
	}

	return warnings
}

// compose joins a catalog message template with a validator detail.
func compose(template, detail string) string {
	if detail == "" {
		return template
	}
	return fmt.Sprintf("%s (%s)", template, detail)
}
