package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrCreatePDFRequestCommandIsNotConstructed = errors.New(
	"CreatePDFRequestCommand must be created via NewCreatePDFRequestCommand constructor",
)

// CreatePDFRequestCommand represents a student asking for a quote on an
// uploaded document.
type CreatePDFRequestCommand struct { //nolint:recvcheck //using for validation
	userID string
	title  string
	pdfURL string
	qty    int
	sides  order.SideType

	guard guard.ConstructorGuard
}

// NewCreatePDFRequestCommand creates a command to open a price request.
func NewCreatePDFRequestCommand(
	userID string,
	title string,
	pdfURL string,
	qty int,
	sides order.SideType,
) (CreatePDFRequestCommand, error) {
	cmd := CreatePDFRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setTitle(title),
		cmd.setPDFURL(pdfURL),
		cmd.setQty(qty),
		cmd.setSides(sides),
	); err != nil {
		return CreatePDFRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePDFRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreatePDFRequestCommandIsNotConstructed)
}

// UserID returns the identity opening the request.
func (c CreatePDFRequestCommand) UserID() string {
	return c.userID
}

// Title returns the display title of the document.
func (c CreatePDFRequestCommand) Title() string {
	return c.title
}

// PDFURL returns the durable blob URL of the uploaded document.
func (c CreatePDFRequestCommand) PDFURL() string {
	return c.pdfURL
}

// Qty returns the number of copies requested.
func (c CreatePDFRequestCommand) Qty() int {
	return c.qty
}

// Sides returns the printing side type.
func (c CreatePDFRequestCommand) Sides() order.SideType {
	return c.sides
}

func (c *CreatePDFRequestCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CreatePDFRequestCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreatePDFRequestCommand) setPDFURL(pdfURL string) error {
	if pdfURL == "" {
		return errs.NewValueIsRequiredError("pdfUrl")
	}
	c.pdfURL = pdfURL
	return nil
}

func (c *CreatePDFRequestCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *CreatePDFRequestCommand) setSides(sides order.SideType) error {
	if err := sides.Validate(); err != nil {
		return err
	}
	c.sides = sides
	return nil
}
