package commands

import (
	"context"
)

// ToggleLiveLocationCommandHandler flips the admin-controlled tracking switch.
// The flag is independent of status; publishes re-check it at publish time.
type ToggleLiveLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewToggleLiveLocationCommandHandler creates a handler for the tracking switch.
func NewToggleLiveLocationCommandHandler(uowFactory OrderUoWFactory) ToggleLiveLocationCommandHandler {
	return ToggleLiveLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the switch command.
func (h *ToggleLiveLocationCommandHandler) Handle(ctx context.Context, cmd ToggleLiveLocationCommand) error {
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

	aggregate.SetLiveLocation(cmd.Enabled())
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
