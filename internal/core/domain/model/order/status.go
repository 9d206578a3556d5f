package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a print order.
// It implements a state machine with a single-successor transition table:
//
//	pending_price ──(user acceptance)──> sent ──> placed ──> printing ──> out_for_delivery ──> delivered
//	                                      │
//	                                      └──(user cancel)──> cancelled
//
// delivered and cancelled are terminal. pending_price is entered only at
// creation, when at least one custom item is awaiting an admin price, and is
// left exclusively through the user acceptance operation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingPrice is the pre-state for orders containing custom items
	// without an admin-assigned price. Payment is blocked until the user
	// accepts the fully priced order.
	StatusPendingPrice

	// StatusSent is the initial status of a fully priced order. Cancellation
	// is allowed only while the order stays in this status.
	StatusSent

	// StatusPlaced indicates the order has been confirmed for fulfillment.
	StatusPlaced

	// StatusPrinting indicates the materials are being printed.
	StatusPrinting

	// StatusOutForDelivery indicates the order is on its way to the pickup point.
	StatusOutForDelivery

	// StatusDelivered is a terminal status: the order reached the student.
	StatusDelivered

	// StatusCancelled is a terminal status reached via the user cancel action.
	StatusCancelled
)

// statusStrings maps every Status to its wire representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPendingPrice:   "pending_price",
		StatusSent:           "sent",
		StatusPlaced:         "placed",
		StatusPrinting:       "printing",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// validStatusStrings excludes StatusUnknown to support validation and parsing.
func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendingPrice:   "pending_price",
		StatusSent:           "sent",
		StatusPlaced:         "placed",
		StatusPrinting:       "printing",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// advanceTable is the single-successor transition table for the admin advance
// operation. Absence of a key means the status cannot be advanced.
func advanceTable() map[Status]Status {
	return map[Status]Status{
		StatusSent:           StatusPlaced,
		StatusPlaced:         StatusPrinting,
		StatusPrinting:       StatusOutForDelivery,
		StatusOutForDelivery: StatusDelivered,
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown strings, including "unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// AllowsCancel reports whether a user may still cancel the order.
// Cancellation is a hard business rule: only "sent" orders qualify.
func (s Status) AllowsCancel() bool {
	return s == StatusSent
}

// IsTrackable reports whether live-location updates are meaningful for the
// status. The enable flag is independent, but broadcasts only make sense while
// the order is being produced or delivered.
func (s Status) IsTrackable() bool {
	return s == StatusPrinting || s == StatusOutForDelivery
}

// Next returns the single valid successor for the admin advance operation.
//
// Illegal advances are typed errors:
//   - terminal statuses (delivered, cancelled) cannot advance
//   - pending_price must go through user acceptance, not advance
//   - unknown values are rejected outright
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s == StatusPendingPrice {
		return StatusUnknown, errs.NewInvalidTransitionError(
			"pending orders must be accepted by the user before they can advance")
	}

	next, ok := advanceTable()[s]
	if !ok {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			"order is already in a terminal status",
			fmt.Errorf("%s has no next status", s))
	}

	return next, nil
}
