package commands

import (
	"context"
)

// SetPDFRequestPriceCommandHandler quotes a price on a pending request,
// moving it to priced.
type SetPDFRequestPriceCommandHandler struct {
	uowFactory PDFRequestUoWFactory
}

// NewSetPDFRequestPriceCommandHandler creates a handler for request pricing.
func NewSetPDFRequestPriceCommandHandler(uowFactory PDFRequestUoWFactory) SetPDFRequestPriceCommandHandler {
	return SetPDFRequestPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request pricing command.
func (h *SetPDFRequestPriceCommandHandler) Handle(ctx context.Context, cmd SetPDFRequestPriceCommand) error {
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

	if err = aggregate.SetPrice(cmd.Price()); err != nil {
		return err
	}
	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
