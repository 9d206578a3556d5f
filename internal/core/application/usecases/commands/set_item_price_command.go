package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrSetItemPriceCommandIsNotConstructed = errors.New(
	"SetItemPriceCommand must be created via NewSetItemPriceCommand constructor",
)

// SetItemPriceCommand represents an admin assigning a price to one line item
// of an order, typically a custom upload that was created unpriced.
type SetItemPriceCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	itemIndex int
	price     float64

	guard guard.ConstructorGuard
}

// NewSetItemPriceCommand creates a command to price a line item.
func NewSetItemPriceCommand(orderCode string, itemIndex int, price float64) (SetItemPriceCommand, error) {
	cmd := SetItemPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setItemIndex(itemIndex),
		cmd.setPrice(price),
	); err != nil {
		return SetItemPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetItemPriceCommandIsNotConstructed)
}

// OrderCode returns the human-facing code of the order.
func (c SetItemPriceCommand) OrderCode() string {
	return c.orderCode
}

// ItemIndex returns the position of the item being priced.
func (c SetItemPriceCommand) ItemIndex() int {
	return c.itemIndex
}

// Price returns the assigned unit price.
func (c SetItemPriceCommand) Price() float64 {
	return c.price
}

func (c *SetItemPriceCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}

func (c *SetItemPriceCommand) setItemIndex(itemIndex int) error {
	if itemIndex < 0 {
		return errs.NewValueIsInvalidError("itemIndex")
	}
	c.itemIndex = itemIndex
	return nil
}

func (c *SetItemPriceCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
