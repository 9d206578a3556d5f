package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrLiveLocationDisabled signals a location publish against an order whose
	// live-location switch is off. Publishers treat it as a silent no-op.
	ErrLiveLocationDisabled = errors.New("live location is disabled for this order")
)

// DefaultDeliveryDays is the initial delivery estimate for new orders.
const DefaultDeliveryDays = 3

// DefaultPickupPoint is used when order creation does not name a pickup point.
const DefaultPickupPoint = "Main Gate"

// Student is the contact block captured on an order at creation time.
// Identity itself comes from the bearer credential; this block is what the
// admin sees on the fulfillment slip.
type Student struct {
	Name      string
	CollegeID string
	Phone     string
}

// Order is the aggregate root of the print-order lifecycle. It owns the line
// items, the cached pricing total, the status state machine, the payment
// record, and the live-location delivery state.
//
// Invariants:
//   - amount always equals ComputeAmount(items)
//   - status follows the transition table in Status
//   - canCancel is true exactly while status is sent
//   - priceSetByAdmin becomes true once no custom item awaits a price
//   - a terminal status forces liveLocationEnabled to false
//   - userID and code never change after creation
type Order struct {
	id                  kernel.UUID
	code                string
	userID              string
	items               []Item
	amount              float64
	status              Status
	canCancel           bool
	payment             *Payment
	student             Student
	pickupPoint         string
	priceSetByAdmin     bool
	liveLocationEnabled bool
	deliveryLocation    *kernel.GeoPoint
	deliveryDays        int
	createdAt           time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a cart snapshot.
//
// The total is computed from the items, never taken from the caller. When any
// custom item still awaits an admin price the order starts in pending_price;
// otherwise it starts in sent and can be cancelled until it is placed.
func NewOrder(
	id kernel.UUID,
	code string,
	userID string,
	items []Item,
	student Student,
	pickupPoint string,
	payment *Payment,
) (*Order, error) {
	o := &Order{
		deliveryDays: DefaultDeliveryDays,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setUserID(userID),
		o.setItems(items),
		o.setStudent(student),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	o.pickupPoint = pickupPoint
	if o.pickupPoint == "" {
		o.pickupPoint = DefaultPickupPoint
	}

	o.amount = ComputeAmount(o.items)
	if o.hasItemAwaitingPrice() {
		o.status = StatusPendingPrice
	} else {
		o.status = StatusSent
	}
	o.canCancel = o.status.AllowsCancel()

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. All stored fields are
// taken as-is after basic validation; business rules were enforced when the
// mutations happened.
func RestoreOrder(
	id kernel.UUID,
	code string,
	userID string,
	items []Item,
	amount float64,
	status Status,
	canCancel bool,
	payment *Payment,
	student Student,
	pickupPoint string,
	priceSetByAdmin bool,
	liveLocationEnabled bool,
	deliveryLocation *kernel.GeoPoint,
	deliveryDays int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		amount:              amount,
		canCancel:           canCancel,
		student:             student,
		pickupPoint:         pickupPoint,
		priceSetByAdmin:     priceSetByAdmin,
		liveLocationEnabled: liveLocationEnabled,
		deliveryLocation:    deliveryLocation,
		deliveryDays:        deliveryDays,
		createdAt:           createdAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setUserID(userID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
		o.payment = payment
	}

	if deliveryDays < 1 {
		return nil, errs.NewValueIsInvalidError("deliveryDays")
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-facing order code (O####).
func (o *Order) Code() string {
	return o.code
}

// UserID returns the owning identity. Immutable after creation.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Amount returns the cached pricing total.
func (o *Order) Amount() float64 {
	return o.amount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CanCancel reports whether the owning user may still cancel.
func (o *Order) CanCancel() bool {
	return o.canCancel
}

// Payment returns the payment record, nil when none was submitted.
func (o *Order) Payment() *Payment {
	return o.payment
}

// StudentInfo returns the contact block captured at creation.
func (o *Order) StudentInfo() Student {
	return o.student
}

// PickupPoint returns the chosen pickup point.
func (o *Order) PickupPoint() string {
	return o.pickupPoint
}

// PriceSetByAdmin reports whether every custom item has an assigned price.
func (o *Order) PriceSetByAdmin() bool {
	return o.priceSetByAdmin
}

// LiveLocationEnabled reports the admin-controlled tracking switch.
func (o *Order) LiveLocationEnabled() bool {
	return o.liveLocationEnabled
}

// DeliveryLocation returns the last known delivery position, nil before the
// first accepted publish. Only the latest point is kept.
func (o *Order) DeliveryLocation() *kernel.GeoPoint {
	return o.deliveryLocation
}

// DeliveryDays returns the admin-editable delivery estimate.
func (o *Order) DeliveryDays() int {
	return o.deliveryDays
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given identity created the order.
func (o *Order) IsOwnedBy(userID string) bool {
	return o.userID == userID
}

// Cancel is the user cancellation action. Permitted only while the order is
// in sent status; afterwards cancellation is a hard business-rule violation,
// not a race to resolve.
func (o *Order) Cancel() error {
	if !o.status.AllowsCancel() {
		return errs.NewInvalidTransitionErrorWithCause(
			"orders cannot be cancelled after being placed",
			fmt.Errorf("status is %s", o.status))
	}

	o.status = StatusCancelled
	o.canCancel = false
	o.liveLocationEnabled = false
	return nil
}

// Accept is the user acceptance action that moves a fully priced pending
// order into sent, unblocking payment. It fails while any custom item still
// awaits an admin price.
func (o *Order) Accept() error {
	if o.status != StatusPendingPrice {
		return errs.NewInvalidTransitionErrorWithCause(
			"order is not a pending request",
			fmt.Errorf("status is %s", o.status))
	}
	if !o.priceSetByAdmin {
		return errs.NewInvalidTransitionError("admin has not set the price yet")
	}

	o.status = StatusSent
	o.canCancel = true
	return nil
}

// NextStatus returns the single valid successor for the admin advance
// operation without mutating the order.
func (o *Order) NextStatus() (Status, error) {
	return o.status.Next()
}

// Advance moves the order to its single valid successor status. On entering a
// terminal status the live-location switch is forced off. canCancel is
// recomputed on every advance.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.canCancel = next.AllowsCancel()
	if next.IsTerminal() {
		o.liveLocationEnabled = false
	}
	return nil
}

// SetItemPrice applies the admin price override to the item at the given
// index, recomputes the cached total, and rechecks pricing completeness.
// priceSetByAdmin flips to true only while the order still sits in
// pending_price and no custom item awaits a price; the status itself changes
// only through the separate user acceptance step.
func (o *Order) SetItemPrice(index int, price float64) error {
	if index < 0 || index >= len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemIndex", fmt.Errorf("no item at index %d", index))
	}
	if err := o.items[index].setUserPrice(price); err != nil {
		return err
	}

	o.amount = ComputeAmount(o.items)
	if o.status == StatusPendingPrice && !o.hasItemAwaitingPrice() {
		o.priceSetByAdmin = true
	}
	return nil
}

// SetLiveLocation flips the admin-controlled tracking switch. The flag is
// independent of status; publishes check it again at publish time.
func (o *Order) SetLiveLocation(enabled bool) {
	o.liveLocationEnabled = enabled
}

// RecordDeliveryLocation overwrites the last known delivery position.
// Returns ErrLiveLocationDisabled when the switch is off: the point must be
// neither persisted nor broadcast. Last write wins; no history is retained.
func (o *Order) RecordDeliveryLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if !o.liveLocationEnabled {
		return ErrLiveLocationDisabled
	}

	o.deliveryLocation = &point
	return nil
}

// SetDeliveryDays updates the delivery estimate. Purely informational, no
// status coupling.
func (o *Order) SetDeliveryDays(days int) error {
	if days < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryDays", fmt.Errorf("deliveryDays must be a positive number"))
	}
	o.deliveryDays = days
	return nil
}

// CanDelete reports whether the admin may hard-delete the order.
// Only terminal orders qualify.
func (o *Order) CanDelete() bool {
	return o.status.IsTerminal()
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) hasItemAwaitingPrice() bool {
	for _, item := range o.items {
		if item.AwaitsPrice() {
			return true
		}
	}
	return false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if err := ValidateCode(code); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStudent(student Student) error {
	if student.Name == "" {
		return errs.NewValueIsRequiredError("student")
	}
	o.student = student
	return nil
}

func (o *Order) setPayment(payment *Payment) error {
	if payment == nil {
		return nil
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
