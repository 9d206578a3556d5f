package pdfrequest

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status is the sub-lifecycle of a custom-PDF price request. Progression is
// one-way: once a request is added to a cart or cancelled it never moves again.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the request awaits an admin price.
	StatusPending

	// StatusPriced means an admin has assigned a price and the owner may add
	// the request to their cart.
	StatusPriced

	// StatusAddedToCart means the request was consumed into a cart item.
	// Terminal.
	StatusAddedToCart

	// StatusCancelled means the owner withdrew the request. Terminal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:     "pending",
		StatusPriced:      "priced",
		StatusAddedToCart: "added_to_cart",
		StatusCancelled:   "cancelled",
	}
}

// StatusFromString parses the wire representation of a request status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid request status", s))
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// IsTerminal reports whether the request can never transition again.
func (s Status) IsTerminal() bool {
	return s == StatusAddedToCart || s == StatusCancelled
}
