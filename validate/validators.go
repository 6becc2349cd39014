package validate

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only calendar pattern accepted by the date validators:
// 4-digit year, 2-digit month, 2-digit day, dash-separated.
const DateLayout = "2006-01-02"

// ParseDate parses a date string in DateLayout form. Unlike a bare
// time.Parse, it rejects unpadded components such as "2024-1-3".
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date format: %q, expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// dateOnly truncates t to its calendar day in UTC. Parsed dates are already
// midnight UTC, so comparisons ignore time-of-day by construction.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// DateFormat checks that a date string matches DateLayout.
func DateFormat(s string) Result {
	if s == "" {
		return fail(ReasonEmpty, "date is empty")
	}
	if _, err := ParseDate(s); err != nil {
		return fail(ReasonBadDateFormat, err.Error())
	}
	return ok("valid date format")
}

// DateNotPast checks that the date is today or later, relative to the
// injected reference day. Equal-to-today counts as valid.
func DateNotPast(s string, today time.Time) Result {
	d, err := ParseDate(s)
	if err != nil {
		return fail(ReasonBadDateFormat, err.Error())
	}
	if elapsed := daysBetween(d, today); elapsed > 0 {
		return fail(ReasonDateInPast, fmt.Sprintf("date is %d days in the past", elapsed))
	}
	return ok("date is not in the past")
}

// ExpiryAfterIssue checks that the expiry date is strictly later than the
// issue date. Equal dates are invalid.
func ExpiryAfterIssue(issueDate, expiryDate string) Result {
	issue, err := ParseDate(issueDate)
	if err != nil {
		return fail(ReasonBadDateFormat, err.Error())
	}
	expiry, err := ParseDate(expiryDate)
	if err != nil {
		return fail(ReasonBadDateFormat, err.Error())
	}
	if !expiry.After(issue) {
		return fail(ReasonExpiryNotAfterIssue,
			fmt.Sprintf("expiry date (%s) must be after issue date (%s)", expiryDate, issueDate))
	}
	return ok("expiry date is valid")
}

// ExpiryWarning reports whether the expiry date falls inside the warning
// window: 0 <= (expiry - today) <= warningDays. Valid=true means the
// warning fires; already-expired or far-future dates do not trigger it.
func ExpiryWarning(expiryDate string, warningDays int, today time.Time) Result {
	expiry, err := ParseDate(expiryDate)
	if err != nil {
		return fail(ReasonBadDateFormat, err.Error())
	}
	remaining := daysBetween(today, expiry)
	if remaining >= 0 && remaining <= warningDays {
		return Result{
			Valid:  true,
			Reason: ReasonExpiringSoon,
			Detail: fmt.Sprintf("document expires in %d days", remaining),
		}
	}
	return Result{Valid: false, Reason: ReasonOK, Detail: "expiry date is not approaching"}
}

// INN checks a tax identifier: decimal digits only, with a length drawn
// from the allowed set (policy default {10, 12} for organizations vs.
// individual filers).
func INN(inn string, allowedLengths []int) Result {
	if inn == "" {
		return fail(ReasonEmpty, "INN is empty")
	}
	for _, r := range inn {
		if r < '0' || r > '9' {
			return fail(ReasonNonDigit, fmt.Sprintf("INN must contain only digits, got: %q", inn))
		}
	}
	lengths := make([]string, len(allowedLengths))
	valid := false
	for i, n := range allowedLengths {
		lengths[i] = fmt.Sprintf("%d", n)
		if len(inn) == n {
			valid = true
		}
	}
	if !valid {
		return fail(ReasonBadLength,
			fmt.Sprintf("INN length must be %s, got: %d", strings.Join(lengths, " or "), len(inn)))
	}
	return ok(fmt.Sprintf("valid INN (%d digits)", len(inn)))
}

// Amount checks that minAmount <= amount <= maxAmount.
func Amount(amount, minAmount, maxAmount float64) Result {
	if amount < minAmount {
		return fail(ReasonBelowMinimum,
			fmt.Sprintf("amount %v is below minimum %v", amount, minAmount))
	}
	if amount > maxAmount {
		return fail(ReasonAboveMaximum,
			fmt.Sprintf("amount %v exceeds maximum %v", amount, maxAmount))
	}
	return ok(fmt.Sprintf("amount %v is within valid range", amount))
}

// LargeAmountWarning reports whether the amount reaches the given fraction
// of the ceiling. Valid=true means the warning fires; the detail reports
// the percentage of the ceiling reached.
func LargeAmountWarning(amount, maxAmount, fraction float64) Result {
	if maxAmount > 0 && amount >= maxAmount*fraction {
		percent := amount / maxAmount * 100
		return Result{
			Valid:  true,
			Reason: ReasonLargeAmount,
			Detail: fmt.Sprintf("amount %v is %.1f%% of maximum allowed", amount, percent),
		}
	}
	return Result{Valid: false, Reason: ReasonOK, Detail: "amount is not unusually large"}
}

// RequiredFields checks that every required field is present in the value
// map. A field is missing when it is absent, nil, or an empty string. The
// detail lists every missing field, not just the first.
func RequiredFields(values map[string]any, required []string) Result {
	var missing []string
	for _, field := range required {
		v, present := values[field]
		if !present || v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fail(ReasonMissingFields,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return ok("all required fields are present")
}

// DocumentType checks that the type is permitted. The blacklist is checked
// first and wins even when the type also appears on the allow-list.
func DocumentType(docType string, allowed, blacklisted []string) Result {
	if docType == "" {
		return fail(ReasonEmpty, "document type is empty")
	}
	for _, t := range blacklisted {
		if t == docType {
			return fail(ReasonTypeBlacklisted, fmt.Sprintf("document type %q is blacklisted", docType))
		}
	}
	for _, t := range allowed {
		if t == docType {
			return ok(fmt.Sprintf("document type %q is valid", docType))
		}
	}
	return fail(ReasonTypeNotAllowed,
		fmt.Sprintf("document type %q is not allowed (allowed: %s)", docType, strings.Join(allowed, ", ")))
}
