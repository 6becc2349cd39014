package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixed reference day for every time-dependent test
var today = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestDateFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		valid  bool
		reason Reason
	}{
		{"valid date", "2024-02-04", true, ReasonOK},
		{"empty", "", false, ReasonEmpty},
		{"wrong order", "04-02-2024", false, ReasonBadDateFormat},
		{"unpadded month", "2024-2-04", false, ReasonBadDateFormat},
		{"slashes", "2024/02/04", false, ReasonBadDateFormat},
		{"month out of range", "2024-13-01", false, ReasonBadDateFormat},
		{"not a date", "yesterday", false, ReasonBadDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DateFormat(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
			if !tt.valid && tt.input != "" {
				assert.Contains(t, res.Detail, tt.input)
			}
		})
	}
}

func TestDateNotPast(t *testing.T) {
	res := DateNotPast("2024-06-25", today)
	assert.True(t, res.Valid)

	// equal-to-today counts as valid regardless of time-of-day
	res = DateNotPast("2024-06-15", today)
	assert.True(t, res.Valid)

	res = DateNotPast("2024-06-05", today)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonDateInPast, res.Reason)
	assert.Contains(t, res.Detail, "10 days in the past")
}

func TestExpiryAfterIssue(t *testing.T) {
	res := ExpiryAfterIssue("2024-01-01", "2024-12-31")
	assert.True(t, res.Valid)

	// equal dates are invalid, expiry must be strictly later
	res = ExpiryAfterIssue("2024-01-01", "2024-01-01")
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonExpiryNotAfterIssue, res.Reason)

	res = ExpiryAfterIssue("2024-12-31", "2024-01-01")
	assert.False(t, res.Valid)
}

func TestExpiryWarning(t *testing.T) {
	tests := []struct {
		name     string
		expiry   string
		days     int
		triggers bool
	}{
		{"inside window", "2024-06-30", 30, true},
		{"expires today", "2024-06-15", 30, true},
		{"at window edge", "2024-07-15", 30, true},
		{"beyond window", "2024-08-15", 30, false},
		{"already expired", "2024-06-01", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ExpiryWarning(tt.expiry, tt.days, today)
			assert.Equal(t, tt.triggers, res.Valid)
			if tt.triggers {
				assert.Equal(t, ReasonExpiringSoon, res.Reason)
				assert.Contains(t, res.Detail, "expires in")
			}
		})
	}
}

func TestINN(t *testing.T) {
	lengths := []int{10, 12}

	tests := []struct {
		name   string
		inn    string
		valid  bool
		reason Reason
	}{
		{"organization 10 digits", "7743013902", true, ReasonOK},
		{"individual 12 digits", "526317984689", true, ReasonOK},
		{"too short", "123", false, ReasonBadLength},
		{"eleven digits", "77430139021", false, ReasonBadLength},
		{"letters", "7743ABC902", false, ReasonNonDigit},
		{"empty", "", false, ReasonEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := INN(tt.inn, lengths)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}

	t.Run("length message names the allowed set", func(t *testing.T) {
		res := INN("123", lengths)
		assert.Contains(t, res.Detail, "10 or 12")
	})
}

func TestAmount(t *testing.T) {
	const minAmount, maxAmount = 0.01, 10_000_000

	res := Amount(5000, minAmount, maxAmount)
	assert.True(t, res.Valid)

	// boundaries are inclusive
	assert.True(t, Amount(minAmount, minAmount, maxAmount).Valid)
	assert.True(t, Amount(maxAmount, minAmount, maxAmount).Valid)

	res = Amount(-1000, minAmount, maxAmount)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonBelowMinimum, res.Reason)
	assert.Contains(t, res.Detail, "below minimum")

	res = Amount(15_000_000, minAmount, maxAmount)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonAboveMaximum, res.Reason)
	assert.Contains(t, res.Detail, "exceeds maximum")
}

func TestLargeAmountWarning(t *testing.T) {
	res := LargeAmountWarning(9_000_000, 10_000_000, 0.8)
	assert.True(t, res.Valid)
	assert.Equal(t, ReasonLargeAmount, res.Reason)
	assert.Contains(t, res.Detail, "90.0%")

	// exactly at the threshold fires
	assert.True(t, LargeAmountWarning(8_000_000, 10_000_000, 0.8).Valid)

	assert.False(t, LargeAmountWarning(1000, 10_000_000, 0.8).Valid)
}

func TestRequiredFields(t *testing.T) {
	values := map[string]any{
		"document_number": "INV-1",
		"issue_date":      "2024-06-01",
		"inn":             "",
		"note":            nil,
	}

	res := RequiredFields(values, []string{"document_number", "issue_date"})
	assert.True(t, res.Valid)

	// empty strings, nils, and absent keys all count as missing, and the
	// message lists every one of them
	res = RequiredFields(values, []string{"document_number", "inn", "note", "total_amount"})
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonMissingFields, res.Reason)
	assert.Contains(t, res.Detail, "inn")
	assert.Contains(t, res.Detail, "note")
	assert.Contains(t, res.Detail, "total_amount")
	assert.NotContains(t, res.Detail, "document_number")
}

func TestDocumentType(t *testing.T) {
	allowed := []string{"invoice", "contract", "draft"}
	blacklisted := []string{"draft"}

	assert.True(t, DocumentType("invoice", allowed, blacklisted).Valid)

	// blacklist wins even when the type is also allowed
	res := DocumentType("draft", allowed, blacklisted)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonTypeBlacklisted, res.Reason)

	res = DocumentType("receipt", allowed, blacklisted)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonTypeNotAllowed, res.Reason)

	res = DocumentType("", allowed, blacklisted)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonEmpty, res.Reason)
}
