package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents an admin request to move an order to
// the given status. The status must be the single valid successor of the
// order's current status; arbitrary jumps are rejected.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	target    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
func NewAdvanceOrderStatusCommand(orderCode string, target order.Status) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderCode returns the human-facing code of the order to advance.
func (c AdvanceOrderStatusCommand) OrderCode() string {
	return c.orderCode
}

// Target returns the requested status.
func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderStatusCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
