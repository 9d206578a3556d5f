package commands

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrPurgeStaleDataCommandIsNotConstructed = errors.New(
	"PurgeStaleDataCommand must be created via NewPurgeStaleDataCommand constructor",
)

// PurgeStaleDataCommand represents the retention sweep: closed orders and
// requests older than the cutoff are removed.
type PurgeStaleDataCommand struct { //nolint:recvcheck //using for validation
	maxAgeDays int

	guard guard.ConstructorGuard
}

// NewPurgeStaleDataCommand creates a command to run the retention sweep.
func NewPurgeStaleDataCommand(maxAgeDays int) (PurgeStaleDataCommand, error) {
	cmd := PurgeStaleDataCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAgeDays(maxAgeDays); err != nil {
		return PurgeStaleDataCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleDataCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleDataCommandIsNotConstructed)
}

// MaxAgeDays returns the retention cutoff in days.
func (c PurgeStaleDataCommand) MaxAgeDays() int {
	return c.maxAgeDays
}

func (c *PurgeStaleDataCommand) setMaxAgeDays(maxAgeDays int) error {
	if maxAgeDays < 1 {
		return errs.NewValueIsInvalidError("maxAgeDays")
	}
	c.maxAgeDays = maxAgeDays
	return nil
}
