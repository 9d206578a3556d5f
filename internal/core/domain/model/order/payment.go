package order

import (
	"fmt"
	"math"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created through
// one of the payment constructors.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError(
	"payment must be created via NewFullPayment, NewCODPayment, or RestorePayment")

// PaymentKind distinguishes full prepayment from cash-on-delivery splits.
type PaymentKind int

const (
	// PaymentUnknown represents an invalid or undefined payment kind.
	PaymentUnknown PaymentKind = iota

	// PaymentFull means the whole amount was paid up front.
	PaymentFull

	// PaymentCOD means a partial advance was paid, with the rest due on delivery.
	PaymentCOD
)

// PaymentKindFromString parses the wire representation ("FULL" or "COD").
func PaymentKindFromString(s string) (PaymentKind, error) {
	switch s {
	case "FULL":
		return PaymentFull, nil
	case "COD":
		return PaymentCOD, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"paymentType", fmt.Errorf("%q is not a valid payment type", s))
	}
}

// String returns the wire name of the payment kind.
func (k PaymentKind) String() string {
	switch k {
	case PaymentFull:
		return "FULL"
	case PaymentCOD:
		return "COD"
	default:
		return "unknown"
	}
}

// Payment is an immutable value object recording how an order was paid.
// Payment is manual and screenshot-verified; the screenshot URL points at the
// proof uploaded to blob storage. It is never programmatically verified here.
type Payment struct {
	kind            PaymentKind
	screenshotURL   string
	paidAmount      float64
	remainingAmount float64

	guard guard.ConstructorGuard
}

// NewFullPayment records a full prepayment of the given order total.
func NewFullPayment(total float64, screenshotURL string) (Payment, error) {
	if total < 0 {
		return Payment{}, errs.NewValueIsInvalidError("amount")
	}

	return Payment{
		kind:          PaymentFull,
		screenshotURL: screenshotURL,
		paidAmount:    total,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// NewCODPayment records a cash-on-delivery split against the given total.
//
// Invariants:
//   - paid > 0 and paid < total
//   - remaining == total - paid (to the cent)
func NewCODPayment(total, paid, remaining float64, screenshotURL string) (Payment, error) {
	if !(paid > 0) || !(paid < total) {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("paidAmount",
			fmt.Errorf("for COD, paidAmount must be > 0 and < total amount"))
	}
	if roundCents(total-paid) != roundCents(remaining) {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("remainingAmount",
			fmt.Errorf("remainingAmount must equal (total - paidAmount)"))
	}

	return Payment{
		kind:            PaymentCOD,
		screenshotURL:   screenshotURL,
		paidAmount:      paid,
		remainingAmount: remaining,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(kind PaymentKind, screenshotURL string, paid, remaining float64) (Payment, error) {
	if kind != PaymentFull && kind != PaymentCOD {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"paymentType", fmt.Errorf("%d is not a valid payment type", kind))
	}

	return Payment{
		kind:            kind,
		screenshotURL:   screenshotURL,
		paidAmount:      paid,
		remainingAmount: remaining,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payment was created through a constructor.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// Kind returns the payment kind.
func (p Payment) Kind() PaymentKind {
	return p.kind
}

// ScreenshotURL returns the uploaded payment proof URL, possibly empty.
func (p Payment) ScreenshotURL() string {
	return p.screenshotURL
}

// PaidAmount returns the amount already paid.
func (p Payment) PaidAmount() float64 {
	return p.paidAmount
}

// RemainingAmount returns the amount still due on delivery (zero for FULL).
func (p Payment) RemainingAmount() float64 {
	return p.remainingAmount
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
