package order

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the food-order lifecycle. It owns the
// workflow status, the payment status, the snapshotted line items, and the
// optional customer snapshot.
//
// Invariants:
//   - totalValue == sum(item.unitPrice * item.quantity) over items, computed
//     at checkout and never independently mutable
//   - status and paymentStatus change only through ChangeStatus and
//     ConfirmPayment
//   - Finalized and Cancelled are terminal workflow states
//   - paymentStatus leaves Pending at most once
type Order struct {
	id            kernel.UUID
	status        Status
	paymentStatus PaymentStatus
	items         []Item
	totalValue    kernel.Money
	observations  string
	customer      *CustomerSnapshot

	isConstructed bool
}

// NewOrder creates an order at checkout: status Received, payment Pending,
// total computed from the item snapshots. The customer snapshot is optional;
// nil produces an anonymous order.
func NewOrder(id kernel.UUID, items []Item, observations string, snapshot *CustomerSnapshot) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	total, err := totalOf(items)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        StatusReceived,
		paymentStatus: PaymentPending,
		items:         items,
		totalValue:    total,
		observations:  observations,
		customer:      snapshot,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is kept
// as-is and re-checked against the items so a corrupted row cannot rehydrate
// into an aggregate that violates the total-value invariant.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	items []Item,
	totalValue kernel.Money,
	observations string,
	snapshot *CustomerSnapshot,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	computed, err := totalOf(items)
	if err != nil {
		return nil, err
	}
	if !computed.IsEqual(totalValue) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalValue is invalid",
			fmt.Errorf("stored total %s does not match items total %s", totalValue, computed),
		)
	}

	return &Order{
		id:            id,
		status:        status,
		paymentStatus: paymentStatus,
		items:         items,
		totalValue:    totalValue,
		observations:  observations,
		customer:      snapshot,
		isConstructed: true,
	}, nil
}

func totalOf(items []Item) (kernel.Money, error) {
	var total kernel.Money
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total = total.Add(subtotal)
	}
	return total, nil
}

// Validate ensures the Order instance was constructed through NewOrder or
// RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Items returns the snapshotted line items.
func (o *Order) Items() []Item {
	return o.items
}

// TotalValue returns the order total computed at checkout.
func (o *Order) TotalValue() kernel.Money {
	return o.totalValue
}

// Observations returns the free-text note attached to the order.
func (o *Order) Observations() string {
	return o.observations
}

// Customer returns the customer snapshot, or nil for anonymous orders and
// orders whose customer data was erased.
func (o *Order) Customer() *CustomerSnapshot {
	return o.customer
}

// ChangeStatus advances the kitchen workflow to next.
//
// Guards, in order:
//  1. a finalized order never changes again
//  2. the workflow only moves while payment is approved
//  3. the workflow advances exactly one step; the error names the only
//     status this order may move to
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if o.status == StatusFinalized {
		return errs.NewBusinessRuleError("cannot change status, the order is already finalized")
	}

	if o.paymentStatus != PaymentApproved {
		return errs.NewBusinessRuleError("cannot change status, the payment has not been approved yet")
	}

	expected, ok := o.status.Next()
	if !ok || next != expected {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("invalid status, the next valid status for this order is: %s", expected),
		)
	}

	o.status = next
	return nil
}

// ConfirmPayment settles the payment outcome exactly once and derives the
// resulting workflow status: approval starts preparation, rejection cancels.
func (o *Order) ConfirmPayment(outcome PaymentStatus) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	if o.paymentStatus != PaymentPending {
		return errs.NewBusinessRuleError("order payment already processed")
	}

	o.paymentStatus = outcome
	o.status = outcome.OrderStatus()
	return nil
}

// UpdateObservations replaces the free-text note. This is the only field the
// generic update path may touch.
func (o *Order) UpdateObservations(observations string) {
	o.observations = observations
}

// EraseCustomerData strips the customer snapshot from the order, honoring a
// right-to-erasure request. Items and totals are untouched.
func (o *Order) EraseCustomerData() {
	o.customer = nil
}

// PaymentNotification builds the outbound notification for the order's
// customer. The second return is false when the order is anonymous or the
// snapshot carries no e-mail address.
func (o *Order) PaymentNotification() (PaymentNotification, bool) {
	if o.customer == nil || o.customer.Email() == "" {
		return PaymentNotification{}, false
	}

	return PaymentNotification{
		CustomerID:    o.customer.ID().String(),
		CustomerName:  o.customer.Name(),
		CustomerEmail: o.customer.Email(),
		OrderID:       o.id.String(),
		Status:        o.status.String(),
		PaymentStatus: o.paymentStatus.String(),
	}, true
}
