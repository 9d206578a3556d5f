package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a user changing the quantity or side type
// of a staged cart item.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    string
	itemIndex int
	qty       int
	sides     order.SideType

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to edit a staged item.
func NewUpdateCartItemCommand(userID string, itemIndex, qty int, sides order.SideType) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItemIndex(itemIndex),
		cmd.setQty(qty),
		cmd.setSides(sides),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c UpdateCartItemCommand) UserID() string {
	return c.userID
}

// ItemIndex returns the position of the staged item.
func (c UpdateCartItemCommand) ItemIndex() int {
	return c.itemIndex
}

// Qty returns the new quantity.
func (c UpdateCartItemCommand) Qty() int {
	return c.qty
}

// Sides returns the new side type.
func (c UpdateCartItemCommand) Sides() order.SideType {
	return c.sides
}

func (c *UpdateCartItemCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *UpdateCartItemCommand) setItemIndex(itemIndex int) error {
	if itemIndex < 0 {
		return errs.NewValueIsInvalidError("itemIndex")
	}
	c.itemIndex = itemIndex
	return nil
}

func (c *UpdateCartItemCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *UpdateCartItemCommand) setSides(sides order.SideType) error {
	if err := sides.Validate(); err != nil {
		return err
	}
	c.sides = sides
	return nil
}
