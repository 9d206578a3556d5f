package commands

import (
	"context"
)

// SetOrderingEnabledCommandHandler durably flips the storewide ordering
// switch. The setting is persisted so it survives restarts.
type SetOrderingEnabledCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewSetOrderingEnabledCommandHandler creates a handler for the ordering switch.
func NewSetOrderingEnabledCommandHandler(uowFactory SettingsUoWFactory) SetOrderingEnabledCommandHandler {
	return SetOrderingEnabledCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the switch command.
func (h *SetOrderingEnabledCommandHandler) Handle(ctx context.Context, cmd SetOrderingEnabledCommand) error {
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

	if err := uow.SettingsRepository().SetOrderingEnabled(ctx, cmd.Enabled()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
