package cart

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the per-user staging area for order line items. Each user has at
// most one cart; order creation snapshots the items and clears the cart.
type Cart struct {
	id     kernel.UUID
	userID string
	items  []order.Item

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given user.
func NewCart(id kernel.UUID, userID string) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	return &Cart{
		id:     id,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(id kernel.UUID, userID string, items []order.Item) (*Cart, error) {
	c, err := NewCart(id, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)

	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart's internal identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning identity.
func (c *Cart) UserID() string {
	return c.userID
}

// Items returns a copy of the staged line items.
func (c *Cart) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem appends a line item to the cart.
func (c *Cart) AddItem(item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateItem replaces the quantity and side type of the item at the given
// index, keeping its identity and pricing fields intact.
func (c *Cart) UpdateItem(index int, qty int, sides order.SideType) error {
	if index < 0 || index >= len(c.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemIndex", fmt.Errorf("no item at index %d", index))
	}

	current := c.items[index]
	updated, err := order.RestoreItem(
		current.Kind(), current.SubjectID(), current.Title(), current.PDFURL(),
		qty, sides, current.CatalogPrice(), current.UserPrice())
	if err != nil {
		return err
	}

	c.items[index] = updated
	return nil
}

// RemoveItem deletes the item at the given index.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemIndex", fmt.Errorf("no item at index %d", index))
	}

	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Clear removes all items. Called after a successful order creation.
func (c *Cart) Clear() {
	c.items = nil
}

// IsOwnedBy reports whether the given identity owns the cart.
func (c *Cart) IsOwnedBy(userID string) bool {
	return c.userID == userID
}
