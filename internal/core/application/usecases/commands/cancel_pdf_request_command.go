package commands

import (
	"errors"

	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrCancelPDFRequestCommandIsNotConstructed = errors.New(
	"CancelPDFRequestCommand must be created via NewCancelPDFRequestCommand constructor",
)

// CancelPDFRequestCommand represents the owning user withdrawing a price
// request.
type CancelPDFRequestCommand struct { //nolint:recvcheck //using for validation
	userID      string
	requestCode string

	guard guard.ConstructorGuard
}

// NewCancelPDFRequestCommand creates a command to withdraw a request.
func NewCancelPDFRequestCommand(userID, requestCode string) (CancelPDFRequestCommand, error) {
	cmd := CancelPDFRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRequestCode(requestCode),
	); err != nil {
		return CancelPDFRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPDFRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelPDFRequestCommandIsNotConstructed)
}

// UserID returns the identity withdrawing the request.
func (c CancelPDFRequestCommand) UserID() string {
	return c.userID
}

// RequestCode returns the human-facing code of the request.
func (c CancelPDFRequestCommand) RequestCode() string {
	return c.requestCode
}

func (c *CancelPDFRequestCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CancelPDFRequestCommand) setRequestCode(requestCode string) error {
	if err := pdfrequest.ValidateCode(requestCode); err != nil {
		return err
	}
	c.requestCode = requestCode
	return nil
}
