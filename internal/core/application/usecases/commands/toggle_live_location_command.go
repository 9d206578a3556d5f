package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrToggleLiveLocationCommandIsNotConstructed = errors.New(
	"ToggleLiveLocationCommand must be created via NewToggleLiveLocationCommand constructor",
)

// ToggleLiveLocationCommand represents an admin flipping the live-location
// tracking switch on an order.
type ToggleLiveLocationCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	enabled   bool

	guard guard.ConstructorGuard
}

// NewToggleLiveLocationCommand creates a command to flip the tracking switch.
func NewToggleLiveLocationCommand(orderCode string, enabled bool) (ToggleLiveLocationCommand, error) {
	cmd := ToggleLiveLocationCommand{
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderCode(orderCode); err != nil {
		return ToggleLiveLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleLiveLocationCommand) Validate() error {
	return c.guard.Validate(ErrToggleLiveLocationCommandIsNotConstructed)
}

// OrderCode returns the human-facing code of the order.
func (c ToggleLiveLocationCommand) OrderCode() string {
	return c.orderCode
}

// Enabled returns the requested switch position.
func (c ToggleLiveLocationCommand) Enabled() bool {
	return c.enabled
}

func (c *ToggleLiveLocationCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}
