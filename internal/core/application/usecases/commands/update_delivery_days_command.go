package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrUpdateDeliveryDaysCommandIsNotConstructed = errors.New(
	"UpdateDeliveryDaysCommand must be created via NewUpdateDeliveryDaysCommand constructor",
)

// UpdateDeliveryDaysCommand represents an admin updating the delivery
// estimate on an order. Purely informational.
type UpdateDeliveryDaysCommand struct { //nolint:recvcheck //using for validation
	orderCode    string
	deliveryDays int

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryDaysCommand creates a command to update the estimate.
func NewUpdateDeliveryDaysCommand(orderCode string, deliveryDays int) (UpdateDeliveryDaysCommand, error) {
	cmd := UpdateDeliveryDaysCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setDeliveryDays(deliveryDays),
	); err != nil {
		return UpdateDeliveryDaysCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryDaysCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryDaysCommandIsNotConstructed)
}

// OrderCode returns the human-facing code of the order.
func (c UpdateDeliveryDaysCommand) OrderCode() string {
	return c.orderCode
}

// DeliveryDays returns the new estimate.
func (c UpdateDeliveryDaysCommand) DeliveryDays() int {
	return c.deliveryDays
}

func (c *UpdateDeliveryDaysCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}

func (c *UpdateDeliveryDaysCommand) setDeliveryDays(deliveryDays int) error {
	if deliveryDays < 1 {
		return errs.NewValueIsInvalidError("deliveryDays")
	}
	c.deliveryDays = deliveryDays
	return nil
}
