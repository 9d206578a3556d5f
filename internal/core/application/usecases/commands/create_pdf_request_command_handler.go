package commands

import (
	"context"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/core/ports"
)

// CreatePDFRequestCommandHandler opens a price request with a collision-checked
// REQ#### code.
type CreatePDFRequestCommandHandler struct {
	uowFactory PDFRequestUoWFactory
}

// NewCreatePDFRequestCommandHandler creates a handler for request creation.
func NewCreatePDFRequestCommandHandler(uowFactory PDFRequestUoWFactory) CreatePDFRequestCommandHandler {
	return CreatePDFRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command and returns the new request.
func (h *CreatePDFRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePDFRequestCommand,
) (*pdfrequest.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.PDFRequestRepository()
	code, err := uniqueRequestCode(ctx, requestRepo)
	if err != nil {
		return nil, err
	}

	aggregate, err := pdfrequest.NewRequest(
		kernel.NewUUID(), code, cmd.UserID(),
		cmd.Title(), cmd.PDFURL(), cmd.Qty(), cmd.Sides())
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func uniqueRequestCode(ctx context.Context, repo ports.PDFRequestRepository) (string, error) {
	for range codeAttempts {
		code := pdfrequest.NewRandomCode()
		exists, err := repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique request code in %d attempts", codeAttempts)
}
