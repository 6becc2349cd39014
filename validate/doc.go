// Package validate provides pure field-level validators for business
// documents. Every validator is a function of its inputs only: no clock
// reads, no configuration lookups, no side effects. Callers supply the
// reference date and the policy constraints explicitly, which keeps the
// validators deterministic and trivially testable.
package validate
