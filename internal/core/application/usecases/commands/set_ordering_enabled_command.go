package commands

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrSetOrderingEnabledCommandIsNotConstructed = errors.New(
	"SetOrderingEnabledCommand must be created via NewSetOrderingEnabledCommand constructor",
)

// SetOrderingEnabledCommand represents an admin opening or pausing order
// intake storewide.
type SetOrderingEnabledCommand struct { //nolint:recvcheck //using for validation
	enabled bool

	guard guard.ConstructorGuard
}

// NewSetOrderingEnabledCommand creates a command to flip the ordering switch.
func NewSetOrderingEnabledCommand(enabled bool) (SetOrderingEnabledCommand, error) {
	return SetOrderingEnabledCommand{
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderingEnabledCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderingEnabledCommandIsNotConstructed)
}

// Enabled returns the requested switch position.
func (c SetOrderingEnabledCommand) Enabled() bool {
	return c.enabled
}
