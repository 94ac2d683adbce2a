package order

import (
	"pedidos/internal/core/domain/model/customer"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// CustomerSnapshot is the customer identity copied into an order at checkout
// time. It is immune to later directory changes and is the data erased by a
// right-to-erasure request.
type CustomerSnapshot struct {
	id    kernel.UUID
	name  string
	email string
	taxID string
}

// NewCustomerSnapshot copies the identifying fields of a resolved customer.
func NewCustomerSnapshot(c *customer.Customer) (CustomerSnapshot, error) {
	if c == nil {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("customer")
	}

	return CustomerSnapshot{
		id:    c.ID(),
		name:  c.Name(),
		email: c.Email().Value(),
		taxID: c.TaxID().Value(),
	}, nil
}

// RestoreCustomerSnapshot rebuilds a snapshot from persisted fields without
// re-validating email and tax id; they were validated when first resolved.
func RestoreCustomerSnapshot(id kernel.UUID, name, email, taxID string) (CustomerSnapshot, error) {
	if err := id.Validate(); err != nil {
		return CustomerSnapshot{}, err
	}

	return CustomerSnapshot{
		id:    id,
		name:  name,
		email: email,
		taxID: taxID,
	}, nil
}

// ID returns the directory identifier of the snapshotted customer.
func (s CustomerSnapshot) ID() kernel.UUID {
	return s.id
}

// Name returns the customer name as of checkout time.
func (s CustomerSnapshot) Name() string {
	return s.name
}

// Email returns the customer e-mail as of checkout time. May be empty after
// erasure.
func (s CustomerSnapshot) Email() string {
	return s.email
}

// TaxID returns the customer tax id as of checkout time.
func (s CustomerSnapshot) TaxID() string {
	return s.taxID
}
