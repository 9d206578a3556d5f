package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/cart"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// AddRequestToCartCommandHandler converts a priced request into a cart item.
// The request transition and the cart append commit atomically, so a request
// can never be consumed twice or consumed without the item landing in the
// cart.
type AddRequestToCartCommandHandler struct {
	uowFactory RequestCartUoWFactory
}

// NewAddRequestToCartCommandHandler creates a handler for request consumption.
func NewAddRequestToCartCommandHandler(uowFactory RequestCartUoWFactory) AddRequestToCartCommandHandler {
	return AddRequestToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the consumption command.
func (h *AddRequestToCartCommandHandler) Handle(ctx context.Context, cmd AddRequestToCartCommand) error {
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

	item, err := aggregate.ToCartItem()
	if err != nil {
		return err
	}
	if err = aggregate.MarkAddedToCart(); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	switch {
	case err == nil:
		if err = userCart.AddItem(item); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, userCart); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		userCart, err = cart.NewCart(kernel.NewUUID(), cmd.UserID())
		if err != nil {
			return err
		}
		if err = userCart.AddItem(item); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, userCart); err != nil {
			return err
		}
	default:
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
