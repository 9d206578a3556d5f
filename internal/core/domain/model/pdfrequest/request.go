package pdfrequest

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// Request is the aggregate root of the custom-PDF price request sub-lifecycle.
// A student uploads a document and asks for a quote; an admin prices it; the
// student then either cancels or converts the priced request into a cart item.
//
// Invariants:
//   - price is nil exactly while status is pending
//   - status progression is one-way; added_to_cart and cancelled are terminal
//   - userID and code never change after creation
type Request struct {
	id        kernel.UUID
	code      string
	userID    string
	title     string
	pdfURL    string
	qty       int
	sides     order.SideType
	price     *float64
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a price request in pending status.
func NewRequest(
	id kernel.UUID,
	code string,
	userID string,
	title string,
	pdfURL string,
	qty int,
	sides order.SideType,
) (*Request, error) {
	r := &Request{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setUserID(userID),
		r.setDocument(title, pdfURL, qty, sides),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id kernel.UUID,
	code string,
	userID string,
	title string,
	pdfURL string,
	qty int,
	sides order.SideType,
	price *float64,
	status Status,
	createdAt time.Time,
) (*Request, error) {
	r := &Request{
		price:     price,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setUserID(userID),
		r.setDocument(title, pdfURL, qty, sides),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status

	if price != nil && *price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request's internal identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// Code returns the human-facing request code (REQ####).
func (r *Request) Code() string {
	return r.code
}

// UserID returns the owning identity. Immutable after creation.
func (r *Request) UserID() string {
	return r.userID
}

// Title returns the display title of the document.
func (r *Request) Title() string {
	return r.title
}

// PDFURL returns the durable blob URL of the uploaded document.
func (r *Request) PDFURL() string {
	return r.pdfURL
}

// Qty returns the number of copies requested.
func (r *Request) Qty() int {
	return r.qty
}

// Sides returns the printing side type.
func (r *Request) Sides() order.SideType {
	return r.sides
}

// Price returns the admin-assigned price, nil while pending.
func (r *Request) Price() *float64 {
	return r.price
}

// Status returns the current sub-lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// IsOwnedBy reports whether the given identity created the request.
func (r *Request) IsOwnedBy(userID string) bool {
	return r.userID == userID
}

// SetPrice is the admin pricing action, valid only on a pending request.
func (r *Request) SetPrice(price float64) error {
	if r.status != StatusPending {
		return errs.NewInvalidTransitionErrorWithCause(
			"only pending requests can be priced",
			fmt.Errorf("status is %s", r.status))
	}
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	r.price = &price
	r.status = StatusPriced
	return nil
}

// Cancel withdraws the request. Valid from any non-terminal status.
func (r *Request) Cancel() error {
	if r.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			"request is already closed",
			fmt.Errorf("status is %s", r.status))
	}

	r.status = StatusCancelled
	return nil
}

// MarkAddedToCart consumes the request into a cart item. Valid only on a
// priced request: an unpriced or already-consumed request must be rejected.
func (r *Request) MarkAddedToCart() error {
	if r.status != StatusPriced {
		return errs.NewInvalidTransitionErrorWithCause(
			"only priced requests can be added to the cart",
			fmt.Errorf("status is %s", r.status))
	}

	r.status = StatusAddedToCart
	return nil
}

// ToCartItem builds the order line item a priced request converts into.
func (r *Request) ToCartItem() (order.Item, error) {
	if r.status != StatusPriced || r.price == nil {
		return order.Item{}, errs.NewInvalidTransitionErrorWithCause(
			"only priced requests can be added to the cart",
			fmt.Errorf("status is %s", r.status))
	}

	return order.NewCustomItem(r.title, r.pdfURL, r.qty, r.sides, r.price)
}

// IsEqual compares two requests by identity.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCode(code string) error {
	if err := ValidateCode(code); err != nil {
		return err
	}
	r.code = code
	return nil
}

func (r *Request) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	r.userID = userID
	return nil
}

func (r *Request) setDocument(title, pdfURL string, qty int, sides order.SideType) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if pdfURL == "" {
		return errs.NewValueIsRequiredError("pdfUrl")
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	if err := sides.Validate(); err != nil {
		return err
	}

	r.title = title
	r.pdfURL = pdfURL
	r.qty = qty
	r.sides = sides
	return nil
}
