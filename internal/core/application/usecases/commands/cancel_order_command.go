package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents the owning user's request to cancel an order
// that has not been placed yet.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	userID    string
	orderCode string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(userID, orderCode string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderCode(orderCode),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// UserID returns the identity requesting the cancellation.
func (c CancelOrderCommand) UserID() string {
	return c.userID
}

// OrderCode returns the human-facing code of the order to cancel.
func (c CancelOrderCommand) OrderCode() string {
	return c.orderCode
}

func (c *CancelOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CancelOrderCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}
