package commands

import (
	"context"
)

// SetItemPriceCommandHandler applies an admin price to a line item. The
// aggregate recomputes the cached amount and pricing completeness itself.
type SetItemPriceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetItemPriceCommandHandler creates a handler for item pricing.
func NewSetItemPriceCommandHandler(uowFactory OrderUoWFactory) SetItemPriceCommandHandler {
	return SetItemPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item pricing command.
func (h *SetItemPriceCommandHandler) Handle(ctx context.Context, cmd SetItemPriceCommand) error {
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

	if err = aggregate.SetItemPrice(cmd.ItemIndex(), cmd.Price()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
