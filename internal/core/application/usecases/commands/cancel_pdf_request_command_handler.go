package commands

import (
	"context"

	"printshop/internal/pkg/errs"
)

// CancelPDFRequestCommandHandler withdraws a price request. Ownership is
// enforced here: only the creating user may cancel.
type CancelPDFRequestCommandHandler struct {
	uowFactory PDFRequestUoWFactory
}

// NewCancelPDFRequestCommandHandler creates a handler for request withdrawal.
func NewCancelPDFRequestCommandHandler(uowFactory PDFRequestUoWFactory) CancelPDFRequestCommandHandler {
	return CancelPDFRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
func (h *CancelPDFRequestCommandHandler) Handle(ctx context.Context, cmd CancelPDFRequestCommand) error {
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

	requestRepo := uow.PDFRequestRepository()
	aggregate, err := requestRepo.GetByCode(ctx, cmd.RequestCode())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return errs.NewNotAuthorizedError("request belongs to another user")
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}
	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
