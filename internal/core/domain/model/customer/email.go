package customer

import (
	"fmt"
	"regexp"

	"pedidos/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated e-mail address value object.
// The zero value is invalid; construct via NewEmail.
type Email struct {
	value string
}

// NewEmail creates an Email, rejecting malformed addresses.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email is invalid",
			fmt.Errorf("%q is not a well-formed address", value),
		)
	}
	return Email{value: value}, nil
}

// Value returns the address as a string.
func (e Email) Value() string {
	return e.value
}

// IsEmpty reports whether the email is the zero value.
func (e Email) IsEmpty() bool {
	return e.value == ""
}
