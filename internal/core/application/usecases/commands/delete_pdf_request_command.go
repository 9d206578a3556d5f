package commands

import (
	"errors"

	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/guard"
)

var ErrDeletePDFRequestCommandIsNotConstructed = errors.New(
	"DeletePDFRequestCommand must be created via NewDeletePDFRequestCommand constructor",
)

// DeletePDFRequestCommand represents an admin hard-deleting a price request.
type DeletePDFRequestCommand struct { //nolint:recvcheck //using for validation
	requestCode string

	guard guard.ConstructorGuard
}

// NewDeletePDFRequestCommand creates a command to delete a request.
func NewDeletePDFRequestCommand(requestCode string) (DeletePDFRequestCommand, error) {
	cmd := DeletePDFRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestCode(requestCode); err != nil {
		return DeletePDFRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePDFRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeletePDFRequestCommandIsNotConstructed)
}

// RequestCode returns the human-facing code of the request to delete.
func (c DeletePDFRequestCommand) RequestCode() string {
	return c.requestCode
}

func (c *DeletePDFRequestCommand) setRequestCode(requestCode string) error {
	if err := pdfrequest.ValidateCode(requestCode); err != nil {
		return err
	}
	c.requestCode = requestCode
	return nil
}
