package commands

import (
	"errors"

	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrSetPDFRequestPriceCommandIsNotConstructed = errors.New(
	"SetPDFRequestPriceCommand must be created via NewSetPDFRequestPriceCommand constructor",
)

// SetPDFRequestPriceCommand represents an admin quoting a price on a pending
// request.
type SetPDFRequestPriceCommand struct { //nolint:recvcheck //using for validation
	requestCode string
	price       float64

	guard guard.ConstructorGuard
}

// NewSetPDFRequestPriceCommand creates a command to price a request.
func NewSetPDFRequestPriceCommand(requestCode string, price float64) (SetPDFRequestPriceCommand, error) {
	cmd := SetPDFRequestPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestCode(requestCode),
		cmd.setPrice(price),
	); err != nil {
		return SetPDFRequestPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPDFRequestPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPDFRequestPriceCommandIsNotConstructed)
}

// RequestCode returns the human-facing code of the request.
func (c SetPDFRequestPriceCommand) RequestCode() string {
	return c.requestCode
}

// Price returns the quoted price.
func (c SetPDFRequestPriceCommand) Price() float64 {
	return c.price
}

func (c *SetPDFRequestPriceCommand) setRequestCode(requestCode string) error {
	if err := pdfrequest.ValidateCode(requestCode); err != nil {
		return err
	}
	c.requestCode = requestCode
	return nil
}

func (c *SetPDFRequestPriceCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
