package commands

import (
	"context"
	"log/slog"
)

// PurgeStaleDataCommandHandler removes closed orders and requests older than
// the retention cutoff. Only terminal records are touched; live orders are
// never swept regardless of age.
type PurgeStaleDataCommandHandler struct {
	uowFactory MaintenanceUoWFactory
}

// NewPurgeStaleDataCommandHandler creates a handler for the retention sweep.
func NewPurgeStaleDataCommandHandler(uowFactory MaintenanceUoWFactory) PurgeStaleDataCommandHandler {
	return PurgeStaleDataCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h *PurgeStaleDataCommandHandler) Handle(ctx context.Context, cmd PurgeStaleDataCommand) error {
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

	orders, err := uow.OrderRepository().DeleteTerminalOlderThan(ctx, cmd.MaxAgeDays())
	if err != nil {
		return err
	}
	requests, err := uow.PDFRequestRepository().DeleteClosedOlderThan(ctx, cmd.MaxAgeDays())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	slog.Info("retention sweep finished",
		"ordersRemoved", orders,
		"requestsRemoved", requests,
		"maxAgeDays", cmd.MaxAgeDays())
	return nil
}
