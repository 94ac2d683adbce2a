package commands

import (
	"context"
	"log/slog"
)

// DeleteCustomerDataCommandHandler erases a customer's snapshot from all
// their orders. The erasure is a single set-to-null update over every
// matching row; orders, items, and totals survive for bookkeeping.
//
// The operation is idempotent: erasing a customer with no remaining orders
// succeeds with zero rows affected.
type DeleteCustomerDataCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewDeleteCustomerDataCommandHandler creates a handler for erasure requests.
func NewDeleteCustomerDataCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteCustomerDataCommandHandler {
	return DeleteCustomerDataCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_customer_data_handler"),
	}
}

// Handle processes the erasure command.
func (h *DeleteCustomerDataCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerDataCommand) error {
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

	affected, err := uow.OrderRepository().DeleteCustomerData(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "customer data erased",
		"customer_id", cmd.CustomerID().String(),
		"orders_affected", affected,
	)
	return nil
}
