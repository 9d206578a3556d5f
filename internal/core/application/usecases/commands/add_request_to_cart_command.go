package commands

import (
	"errors"

	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrAddRequestToCartCommandIsNotConstructed = errors.New(
	"AddRequestToCartCommand must be created via NewAddRequestToCartCommand constructor",
)

// AddRequestToCartCommand represents the owning user converting a priced
// request into a cart item.
type AddRequestToCartCommand struct { //nolint:recvcheck //using for validation
	userID      string
	requestCode string

	guard guard.ConstructorGuard
}

// NewAddRequestToCartCommand creates a command to consume a priced request.
func NewAddRequestToCartCommand(userID, requestCode string) (AddRequestToCartCommand, error) {
	cmd := AddRequestToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRequestCode(requestCode),
	); err != nil {
		return AddRequestToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRequestToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddRequestToCartCommandIsNotConstructed)
}

// UserID returns the identity consuming the request.
func (c AddRequestToCartCommand) UserID() string {
	return c.userID
}

// RequestCode returns the human-facing code of the request.
func (c AddRequestToCartCommand) RequestCode() string {
	return c.requestCode
}

func (c *AddRequestToCartCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *AddRequestToCartCommand) setRequestCode(requestCode string) error {
	if err := pdfrequest.ValidateCode(requestCode); err != nil {
		return err
	}
	c.requestCode = requestCode
	return nil
}
