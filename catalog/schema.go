package catalog

import (
	"fmt"
	"strings"
)

// fileSchema mirrors the on-disk YAML structure. Scalar fields are
// pointers so that a missing key can be told apart from a zero value;
// every required key is checked exactly once in validate().
type fileSchema struct {
	CriticalRules *struct {
		MustBeSigned           *bool `yaml:"must_be_signed"`
		ExpiryDateMustBeFuture *bool `yaml:"expiry_date_must_be_future"`
		MustHaveINN            *bool `yaml:"must_have_inn"`
	} `yaml:"critical_rules"`

	DocumentTypes *struct {
		Allowed     []string `yaml:"allowed"`
		Blacklisted []string `yaml:"blacklisted"`
	} `yaml:"document_types"`

	RequiredFields map[string][]string `yaml:"required_fields"`

	INNValidation *struct {
		AllowedLengths []int `yaml:"allowed_lengths"`
	} `yaml:"inn_validation"`

	Thresholds *struct {
		MinAmount                  *float64 `yaml:"min_amount"`
		MaxAmount                  *float64 `yaml:"max_amount"`
		ExpiryWarningDays          *int     `yaml:"expiry_warning_days"`
		LargeAmountWarningFraction *float64 `yaml:"large_amount_warning_fraction"`
	} `yaml:"thresholds"`

	ValidationMessages map[string]string `yaml:"validation_messages"`
}

// messageKeys are the templates every catalog must define.
var messageKeys = []string{
	"error_not_signed",
	"error_invalid_type",
	"error_missing_fields",
	"error_invalid_date",
	"error_expired",
	"error_invalid_inn",
	"error_amount_range",
	"warning_expiring_soon",
	"warning_large_amount",
	"success",
}

// ValidationError aggregates every structural problem found in a catalog
// file. The load fails once with the full list rather than lazily
// per-document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid rule catalog: %s", strings.Join(e.Problems, "; "))
}

// validate checks every required key and type constraint, collecting all
// problems before returning.
func (s *fileSchema) validate() error {
	var problems []string

	if s.CriticalRules == nil {
		problems = append(problems, "critical_rules is required")
	} else {
		if s.CriticalRules.MustBeSigned == nil {
			problems = append(problems, "critical_rules.must_be_signed is required")
		}
		if s.CriticalRules.ExpiryDateMustBeFuture == nil {
			problems = append(problems, "critical_rules.expiry_date_must_be_future is required")
		}
		if s.CriticalRules.MustHaveINN == nil {
			problems = append(problems, "critical_rules.must_have_inn is required")
		}
	}

	if s.DocumentTypes == nil {
		problems = append(problems, "document_types is required")
	} else if len(s.DocumentTypes.Allowed) == 0 {
		problems = append(problems, "document_types.allowed must not be empty")
	}

	if s.RequiredFields == nil {
		problems = append(problems, "required_fields is required")
	}

	if s.INNValidation == nil {
		problems = append(problems, "inn_validation is required")
	} else if len(s.INNValidation.AllowedLengths) == 0 {
		problems = append(problems, "inn_validation.allowed_lengths must not be empty")
	} else {
		for _, n := range s.INNValidation.AllowedLengths {
			if n <= 0 {
				problems = append(problems, fmt.Sprintf("inn_validation.allowed_lengths contains non-positive length %d", n))
			}
		}
	}

	if s.Thresholds == nil {
		problems = append(problems, "thresholds is required")
	} else {
		if s.Thresholds.MinAmount == nil {
			problems = append(problems, "thresholds.min_amount is required")
		}
		if s.Thresholds.MaxAmount == nil {
			problems = append(problems, "thresholds.max_amount is required")
		}
		if s.Thresholds.MinAmount != nil && s.Thresholds.MaxAmount != nil &&
			*s.Thresholds.MinAmount > *s.Thresholds.MaxAmount {
			problems = append(problems, "thresholds.min_amount must not exceed thresholds.max_amount")
		}
		if s.Thresholds.ExpiryWarningDays == nil {
			problems = append(problems, "thresholds.expiry_warning_days is required")
		} else if *s.Thresholds.ExpiryWarningDays < 0 {
			problems = append(problems, "thresholds.expiry_warning_days must not be negative")
		}
		if s.Thresholds.LargeAmountWarningFraction != nil &&
			(*s.Thresholds.LargeAmountWarningFraction <= 0 || *s.Thresholds.LargeAmountWarningFraction > 1) {
			problems = append(problems, "thresholds.large_amount_warning_fraction must be in (0, 1]")
		}
	}

	if s.ValidationMessages == nil {
		problems = append(problems, "validation_messages is required")
	} else {
		for _, key := range messageKeys {
			if s.ValidationMessages[key] == "" {
				problems = append(problems, "validation_messages."+key+" is required")
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// build converts a validated schema into the immutable Catalog.
func (s *fileSchema) build() *Catalog {
	fraction := DefaultLargeAmountFraction
	if s.Thresholds.LargeAmountWarningFraction != nil {
		fraction = *s.Thresholds.LargeAmountWarningFraction
	}

	required := make(map[string][]string, len(s.RequiredFields))
	for docType, fields := range s.RequiredFields {
		required[docType] = append([]string(nil), fields...)
	}

	return &Catalog{
		Critical: CriticalRules{
			MustBeSigned:           *s.CriticalRules.MustBeSigned,
			ExpiryDateMustBeFuture: *s.CriticalRules.ExpiryDateMustBeFuture,
			MustHaveINN:            *s.CriticalRules.MustHaveINN,
		},
		Types: TypePolicy{
			Allowed:     append([]string(nil), s.DocumentTypes.Allowed...),
			Blacklisted: append([]string(nil), s.DocumentTypes.Blacklisted...),
		},
		RequiredFields: required,
		INN: INNPolicy{
			AllowedLengths: append([]int(nil), s.INNValidation.AllowedLengths...),
		},
		Thresholds: Thresholds{
			MinAmount:           *s.Thresholds.MinAmount,
			MaxAmount:           *s.Thresholds.MaxAmount,
			ExpiryWarningDays:   *s.Thresholds.ExpiryWarningDays,
			LargeAmountFraction: fraction,
		},
		Messages: Messages{
			ErrorNotSigned:      s.ValidationMessages["error_not_signed"],
			ErrorInvalidType:    s.ValidationMessages["error_invalid_type"],
			ErrorMissingFields:  s.ValidationMessages["error_missing_fields"],
			ErrorInvalidDate:    s.ValidationMessages["error_invalid_date"],
			ErrorExpired:        s.ValidationMessages["error_expired"],
			ErrorInvalidINN:     s.ValidationMessages["error_invalid_inn"],
			ErrorAmountRange:    s.ValidationMessages["error_amount_range"],
			WarningExpiringSoon: s.ValidationMessages["warning_expiring_soon"],
			WarningLargeAmount:  s.ValidationMessages["warning_large_amount"],
			Success:             s.ValidationMessages["success"],
		},
	}
}
