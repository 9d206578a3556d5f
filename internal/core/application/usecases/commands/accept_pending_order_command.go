package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrAcceptPendingOrderCommandIsNotConstructed = errors.New(
	"AcceptPendingOrderCommand must be created via NewAcceptPendingOrderCommand constructor",
)

// AcceptPendingOrderCommand represents the owning user's acceptance of the
// admin-assigned prices on a pending order.
type AcceptPendingOrderCommand struct { //nolint:recvcheck //using for validation
	userID    string
	orderCode string

	guard guard.ConstructorGuard
}

// NewAcceptPendingOrderCommand creates a command to accept a pending order.
func NewAcceptPendingOrderCommand(userID, orderCode string) (AcceptPendingOrderCommand, error) {
	cmd := AcceptPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderCode(orderCode),
	); err != nil {
		return AcceptPendingOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPendingOrderCommandIsNotConstructed)
}

// UserID returns the identity accepting the prices.
func (c AcceptPendingOrderCommand) UserID() string {
	return c.userID
}

// OrderCode returns the human-facing code of the pending order.
func (c AcceptPendingOrderCommand) OrderCode() string {
	return c.orderCode
}

func (c *AcceptPendingOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *AcceptPendingOrderCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}
