package customer

import (
	"fmt"
	"regexp"
	"strings"

	"pedidos/internal/pkg/errs"
)

// taxIDPattern accepts the 11-digit CPF shape, with or without punctuation:
// "111.111.111-11" or "11111111111".
var taxIDPattern = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)

// TaxID is a validated taxpayer identifier value object.
// The zero value is invalid; construct via NewTaxID.
type TaxID struct {
	value string
}

// NewTaxID creates a TaxID, rejecting values that do not match the 11-digit
// format. The stored value keeps the caller's punctuation untouched since the
// directory is the system of record for formatting.
func NewTaxID(value string) (TaxID, error) {
	if value == "" {
		return TaxID{}, errs.NewValueIsRequiredError("taxId")
	}
	if !taxIDPattern.MatchString(value) {
		return TaxID{}, errs.NewValueIsInvalidErrorWithCause(
			"taxId is invalid",
			fmt.Errorf("%q does not match the expected format", value),
		)
	}
	return TaxID{value: value}, nil
}

// Value returns the identifier as supplied at construction.
func (t TaxID) Value() string {
	return t.value
}

// Digits returns only the numeric characters of the identifier.
func (t TaxID) Digits() string {
	var b strings.Builder
	for _, r := range t.value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsEmpty reports whether the tax id is the zero value.
func (t TaxID) IsEmpty() bool {
	return t.value == ""
}
