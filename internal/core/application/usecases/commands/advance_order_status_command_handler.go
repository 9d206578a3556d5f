package commands

import (
	"context"
	"fmt"

	"printshop/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler handles the admin status advance. The
// requested status is checked against the transition table's single valid
// successor, so a stale admin screen cannot skip or repeat a step.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advances.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status advance command.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	next, err := aggregate.NextStatus()
	if err != nil {
		return err
	}
	if next != cmd.Target() {
		return errs.NewInvalidTransitionErrorWithCause(
			fmt.Sprintf("cannot move order from %s to %s", aggregate.Status(), cmd.Target()),
			fmt.Errorf("the only valid next status is %s", next))
	}

	if err = aggregate.Advance(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
