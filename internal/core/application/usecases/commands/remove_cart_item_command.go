package commands

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a user removing a staged cart item.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    string
	itemIndex int

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a staged item.
func NewRemoveCartItemCommand(userID string, itemIndex int) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItemIndex(itemIndex),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c RemoveCartItemCommand) UserID() string {
	return c.userID
}

// ItemIndex returns the position of the staged item.
func (c RemoveCartItemCommand) ItemIndex() int {
	return c.itemIndex
}

func (c *RemoveCartItemCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *RemoveCartItemCommand) setItemIndex(itemIndex int) error {
	if itemIndex < 0 {
		return errs.NewValueIsInvalidError("itemIndex")
	}
	c.itemIndex = itemIndex
	return nil
}
