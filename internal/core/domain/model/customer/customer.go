package customer

import (
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Customer is the identity resolved from the customer directory. It is
// immutable once constructed; orders copy the fields they need into a
// snapshot rather than holding a reference.
type Customer struct {
	id    kernel.UUID
	name  string
	email Email
	taxID TaxID
}

// NewCustomer creates a Customer from directory data. All fields are
// required; email and tax id must already be validated value objects.
func NewCustomer(id kernel.UUID, name string, email Email, taxID TaxID) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if taxID.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("taxId")
	}

	return &Customer{
		id:    id,
		name:  name,
		email: email,
		taxID: taxID,
	}, nil
}

// ID returns the customer's directory identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the validated e-mail address.
func (c *Customer) Email() Email {
	return c.email
}

// TaxID returns the validated taxpayer identifier.
func (c *Customer) TaxID() TaxID {
	return c.taxID
}
