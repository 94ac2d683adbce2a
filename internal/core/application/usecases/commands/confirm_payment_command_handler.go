package commands

import (
	"context"
	"encoding/json"

	"pedidos/internal/pkg/errs"
)

// notificationPayload is the wire shape staged in the notification outbox and
// later delivered to the customer-notification queue.
type notificationPayload struct {
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	OrderID       string `json:"orderId"`
	Status        string `json:"resultingStatus"`
	PaymentStatus string `json:"resultingPaymentStatus"`
}

// ConfirmPaymentCommandHandler records a payment decision exactly once.
//
// The order is re-read inside the transaction, so the pending-payment
// precondition is checked against the row the transaction will write, not a
// stale copy. When the order carries a customer snapshot with an e-mail, the
// customer notification is staged in the outbox within the same transaction;
// a relay job delivers it after commit. Either everything commits — payment
// status, workflow status, notification — or nothing does.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
// Requires a PaymentUoWFactory so the order write and the outbox write share
// a transaction.
func NewConfirmPaymentCommandHandler(uowFactory PaymentUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
// Returns a NotFound error for unknown orders, a business rule error when the
// payment was already decided, and a business rule error wrapping the cause
// when persistence fails mid-confirmation.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.ConfirmPayment(cmd.Outcome()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return errs.NewBusinessRuleErrorWithCause("failed to confirm payment", err)
	}

	if notification, ok := existing.PaymentNotification(); ok {
		payload, err := json.Marshal(notificationPayload{
			CustomerID:    notification.CustomerID,
			CustomerName:  notification.CustomerName,
			CustomerEmail: notification.CustomerEmail,
			OrderID:       notification.OrderID,
			Status:        notification.Status,
			PaymentStatus: notification.PaymentStatus,
		})
		if err != nil {
			return errs.NewBusinessRuleErrorWithCause("failed to confirm payment", err)
		}

		if err = uow.NotificationOutbox().Add(ctx, payload); err != nil {
			return errs.NewBusinessRuleErrorWithCause("failed to confirm payment", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewBusinessRuleErrorWithCause("failed to confirm payment", err)
	}

	return nil
}
