package validate

// Reason identifies why a validator accepted or rejected a value.
// Callers branch on Reason programmatically; Detail is for humans.
type Reason string

const (
	// ReasonOK indicates the value passed the check.
	ReasonOK Reason = "ok"

	// ReasonEmpty indicates a required value was empty.
	ReasonEmpty Reason = "empty"

	// ReasonBadDateFormat indicates a date string did not match YYYY-MM-DD.
	ReasonBadDateFormat Reason = "bad_date_format"

	// ReasonDateInPast indicates a date lies before the reference day.
	ReasonDateInPast Reason = "date_in_past"

	// ReasonExpiryNotAfterIssue indicates an expiry date that is not
	// strictly later than the issue date.
	ReasonExpiryNotAfterIssue Reason = "expiry_not_after_issue"

	// ReasonExpiringSoon indicates an expiry date inside the warning window.
	ReasonExpiringSoon Reason = "expiring_soon"

	// ReasonNonDigit indicates a tax identifier containing non-digits.
	ReasonNonDigit Reason = "non_digit"

	// ReasonBadLength indicates a tax identifier of a disallowed length.
	ReasonBadLength Reason = "bad_length"

	// ReasonBelowMinimum indicates an amount under the configured floor.
	ReasonBelowMinimum Reason = "below_minimum"

	// ReasonAboveMaximum indicates an amount over the configured ceiling.
	ReasonAboveMaximum Reason = "above_maximum"

	// ReasonLargeAmount indicates an amount near the configured ceiling.
	ReasonLargeAmount Reason = "large_amount"

	// ReasonMissingFields indicates one or more required fields are absent.
	ReasonMissingFields Reason = "missing_fields"

	// ReasonTypeBlacklisted indicates a document type on the blacklist.
	// Blacklisting wins over any allow-list entry.
	ReasonTypeBlacklisted Reason = "type_blacklisted"

	// ReasonTypeNotAllowed indicates a document type absent from the
	// allow-list (and not blacklisted).
	ReasonTypeNotAllowed Reason = "type_not_allowed"
)

// Result is the outcome of a single field validation.
type Result struct {
	// Valid reports whether the check passed. For warning-style checks
	// (ExpiryWarning, LargeAmountWarning) Valid=true means the warning
	// condition holds.
	Valid bool

	// Reason is the machine-readable outcome code.
	Reason Reason

	// Detail is the human-readable explanation.
	Detail string
}

func ok(detail string) Result {
	return Result{Valid: true, Reason: ReasonOK, Detail: detail}
}

func fail(reason Reason, detail string) Result {
	return Result{Valid: false, Reason: reason, Detail: detail}
}
