package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// PaymentSpec carries the payment fields submitted with an order. The total
// is never taken from here; the handler validates the split against the
// computed order amount.
type PaymentSpec struct {
	Kind            order.PaymentKind
	PaidAmount      float64
	RemainingAmount float64
	ScreenshotURL   string
}

// CreateOrderCommand represents a request to create an order from the
// caller's cart snapshot. The declared amount is a client-side echo of the
// expected total; the handler recomputes and rejects mismatches.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID      string
	isAdmin     bool
	items       []order.Item
	amount      float64
	student     order.Student
	pickupPoint string
	payment     *PaymentSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new print order.
func NewCreateOrderCommand(
	userID string,
	isAdmin bool,
	items []order.Item,
	amount float64,
	student order.Student,
	pickupPoint string,
	payment *PaymentSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		isAdmin:     isAdmin,
		pickupPoint: pickupPoint,
		payment:     payment,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setAmount(amount),
		cmd.setStudent(student),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identity placing the order.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// IsAdmin reports whether the caller holds the admin role. Admins bypass the
// ordering-enabled switch.
func (c CreateOrderCommand) IsAdmin() bool {
	return c.isAdmin
}

// Items returns the line items of the order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Amount returns the client-declared total.
func (c CreateOrderCommand) Amount() float64 {
	return c.amount
}

// StudentInfo returns the contact block for the fulfillment slip.
func (c CreateOrderCommand) StudentInfo() order.Student {
	return c.student
}

// PickupPoint returns the chosen pickup point, possibly empty.
func (c CreateOrderCommand) PickupPoint() string {
	return c.pickupPoint
}

// Payment returns the submitted payment fields, nil when none.
func (c CreateOrderCommand) Payment() *PaymentSpec {
	return c.payment
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setStudent(student order.Student) error {
	if student.Name == "" {
		return errs.NewValueIsRequiredError("student")
	}
	c.student = student
	return nil
}
