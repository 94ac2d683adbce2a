package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles the generic-update path: load the order,
// replace its observations, persist. The read and write share one unit of
// work so a concurrent mutation cannot slip between them.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Returns a NotFound error when no order
// with the command's id exists.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	existing.UpdateObservations(cmd.Observations())

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
