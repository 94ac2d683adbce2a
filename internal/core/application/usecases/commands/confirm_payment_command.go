package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a payment decision arriving from the
// payment provider, normally through the payment-confirmation queue.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to record a payment outcome.
// Validates that the order ID is valid and the outcome is a known member.
func NewConfirmPaymentCommand(orderID kernel.UUID, outcome order.PaymentStatus) (ConfirmPaymentCommand, error) {
	paymentCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setOutcome(outcome),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPaymentCommandIsNotConstructed if validation fails.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment was decided.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the provider's payment decision.
func (c ConfirmPaymentCommand) Outcome() order.PaymentStatus {
	return c.outcome
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setOutcome(outcome order.PaymentStatus) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	c.outcome = outcome
	return nil
}
