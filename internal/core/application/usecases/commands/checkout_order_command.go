package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutItem is one requested line of a checkout: a catalog product
// identifier and how many units the customer wants.
type CheckoutItem struct {
	ProductID string
	Quantity  int
}

// CheckoutOrderCommand represents a request to place a new order.
// Carries the requested items, an optional free-text note, and an optional
// customer identifier. The customer identifier is kept as the raw string the
// caller sent: only well-formed UUIDs trigger a directory lookup, anything
// else produces an anonymous order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutOrderCommand(orderID, items, "no onions", customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutOrderCommandHandler(uowFactory, catalog, directory)
//	placed, err := handler.Handle(ctx, cmd)
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	items        []CheckoutItem
	observations string
	customerID   string

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a command to place a new order.
// Validates that the order ID is valid and that at least one item with a
// known product id and positive quantity was requested.
func NewCheckoutOrderCommand(
	orderID kernel.UUID,
	items []CheckoutItem,
	observations string,
	customerID string,
) (CheckoutOrderCommand, error) {
	checkoutCommand := CheckoutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setItems(items),
	); err != nil {
		return CheckoutOrderCommand{}, err
	}

	checkoutCommand.observations = observations
	checkoutCommand.customerID = customerID
	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutOrderCommandIsNotConstructed if validation fails.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the requested line items.
func (c CheckoutOrderCommand) Items() []CheckoutItem {
	return c.items
}

// Observations returns the free-text note for the kitchen.
func (c CheckoutOrderCommand) Observations() string {
	return c.observations
}

// CustomerID returns the raw customer identifier from the request. May be
// empty or not a UUID at all.
func (c CheckoutOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *CheckoutOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutOrderCommand) setItems(items []CheckoutItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.ProductID == "" {
			return errs.NewValueIsRequiredError("productId")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
	}

	c.items = items
	return nil
}
