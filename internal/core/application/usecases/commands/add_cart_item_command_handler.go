package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/cart"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// AddCartItemCommandHandler stages a line item in the caller's cart,
// creating the cart on first use.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart appends.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the append command.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	switch {
	case err == nil:
		if err = userCart.AddItem(cmd.Item()); err != nil {
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
		if err = userCart.AddItem(cmd.Item()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, userCart); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
