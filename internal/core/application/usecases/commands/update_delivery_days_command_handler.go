package commands

import (
	"context"
)

// UpdateDeliveryDaysCommandHandler updates the delivery estimate on an order.
type UpdateDeliveryDaysCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryDaysCommandHandler creates a handler for estimate updates.
func NewUpdateDeliveryDaysCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryDaysCommandHandler {
	return UpdateDeliveryDaysCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the estimate update command.
func (h *UpdateDeliveryDaysCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryDaysCommand) error {
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

	if err = aggregate.SetDeliveryDays(cmd.DeliveryDays()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
