package commands

import (
	"context"

	"printshop/internal/pkg/errs"
)

// AcceptPendingOrderCommandHandler moves a fully priced pending order into
// sent, unblocking payment and cancellation.
type AcceptPendingOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptPendingOrderCommandHandler creates a handler for pending order acceptance.
func NewAcceptPendingOrderCommandHandler(uowFactory OrderUoWFactory) AcceptPendingOrderCommandHandler {
	return AcceptPendingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
func (h *AcceptPendingOrderCommandHandler) Handle(ctx context.Context, cmd AcceptPendingOrderCommand) error {
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
	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return errs.NewNotAuthorizedError("order belongs to another user")
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
