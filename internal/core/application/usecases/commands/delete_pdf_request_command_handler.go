package commands

import (
	"context"
)

// DeletePDFRequestCommandHandler hard-deletes a price request.
type DeletePDFRequestCommandHandler struct {
	uowFactory PDFRequestUoWFactory
}

// NewDeletePDFRequestCommandHandler creates a handler for request deletion.
func NewDeletePDFRequestCommandHandler(uowFactory PDFRequestUoWFactory) DeletePDFRequestCommandHandler {
	return DeletePDFRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeletePDFRequestCommandHandler) Handle(ctx context.Context, cmd DeletePDFRequestCommand) error {
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
	if _, err := requestRepo.GetByCode(ctx, cmd.RequestCode()); err != nil {
		return err
	}
	if err := requestRepo.Delete(ctx, cmd.RequestCode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
