package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrDeleteCustomerDataCommandIsNotConstructed = errors.New(
	"DeleteCustomerDataCommand must be created via NewDeleteCustomerDataCommand constructor",
)

// DeleteCustomerDataCommand represents a right-to-erasure request: strip the
// customer snapshot from every order that references the customer.
type DeleteCustomerDataCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerDataCommand creates a command to erase a customer's data
// from all their orders.
func NewDeleteCustomerDataCommand(customerID kernel.UUID) (DeleteCustomerDataCommand, error) {
	eraseCommand := DeleteCustomerDataCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := eraseCommand.setCustomerID(customerID); err != nil {
		return DeleteCustomerDataCommand{}, err
	}

	return eraseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteCustomerDataCommandIsNotConstructed if validation fails.
func (c DeleteCustomerDataCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerDataCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to erase.
func (c DeleteCustomerDataCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *DeleteCustomerDataCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
