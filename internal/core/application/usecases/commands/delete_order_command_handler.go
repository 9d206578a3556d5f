package commands

import (
	"context"
	"fmt"

	"printshop/internal/pkg/errs"
)

// DeleteOrderCommandHandler hard-deletes an order. Only terminal orders
// (delivered or cancelled) may be removed.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	aggregate, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}
	if !aggregate.CanDelete() {
		return errs.NewInvalidTransitionErrorWithCause(
			"only delivered or cancelled orders can be deleted",
			fmt.Errorf("status is %s", aggregate.Status()))
	}

	if err = orderRepo.Delete(ctx, cmd.OrderCode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
