package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a user staging a line item in their cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID string
	item   order.Item

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to stage a cart item.
func NewAddCartItemCommand(userID string, item order.Item) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItem(item),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddCartItemCommand) UserID() string {
	return c.userID
}

// Item returns the line item to stage.
func (c AddCartItemCommand) Item() order.Item {
	return c.item
}

func (c *AddCartItemCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setItem(item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c.item = item
	return nil
}
