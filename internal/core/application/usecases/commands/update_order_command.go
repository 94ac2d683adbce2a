package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order's mutable data.
// Observations is the only field the generic update path may touch; status
// and payment changes go through their dedicated commands.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	observations string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's observations.
// A nil observations pointer means the request carried no updatable field and
// is rejected as a validation error.
func NewUpdateOrderCommand(orderID kernel.UUID, observations *string) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := updateCommand.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	if observations == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("observations")
	}

	updateCommand.observations = *observations
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Observations returns the replacement note. May be empty, which clears the
// existing note.
func (c UpdateOrderCommand) Observations() string {
	return c.observations
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
