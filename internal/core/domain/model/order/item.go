package order

import (
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through one
// of the item constructors.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewSubjectItem, NewCustomItem, or RestoreItem")

// ItemKind distinguishes catalog line items from user-uploaded documents.
type ItemKind int

const (
	// ItemKindUnknown represents an invalid or undefined kind.
	ItemKindUnknown ItemKind = iota

	// ItemKindSubject is a line item sourced from the catalog, with a known
	// price snapshot taken at add-to-cart time.
	ItemKindSubject

	// ItemKindCustom is a line item sourced from a user-uploaded document.
	// Its price is unknown until an admin assigns one.
	ItemKindCustom
)

// ItemKindFromString parses the wire representation ("subject" or "custom").
func ItemKindFromString(s string) (ItemKind, error) {
	switch s {
	case "subject":
		return ItemKindSubject, nil
	case "custom":
		return ItemKindCustom, nil
	default:
		return ItemKindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%q is not a valid item type", s))
	}
}

// String returns the wire name of the kind.
func (k ItemKind) String() string {
	switch k {
	case ItemKindSubject:
		return "subject"
	case ItemKindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Validate checks that the kind is one of the defined values.
func (k ItemKind) Validate() error {
	if k != ItemKindSubject && k != ItemKindCustom {
		return errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%d is not a valid item type", k))
	}
	return nil
}

// SideType selects single- or double-sided printing for a line item.
type SideType int

const (
	// SideUnknown represents an invalid or undefined side type.
	SideUnknown SideType = iota

	// SideSingle prints on one side of each page.
	SideSingle

	// SideDouble prints on both sides of each page.
	SideDouble
)

// SideTypeFromString parses the wire representation ("single" or "double").
func SideTypeFromString(s string) (SideType, error) {
	switch s {
	case "single":
		return SideSingle, nil
	case "double":
		return SideDouble, nil
	default:
		return SideUnknown, errs.NewValueIsInvalidErrorWithCause(
			"sides", fmt.Errorf("%q is not a valid side type", s))
	}
}

// String returns the wire name of the side type.
func (s SideType) String() string {
	switch s {
	case SideSingle:
		return "single"
	case SideDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Validate checks that the side type is one of the defined values.
func (s SideType) Validate() error {
	if s != SideSingle && s != SideDouble {
		return errs.NewValueIsInvalidErrorWithCause(
			"sides", fmt.Errorf("%d is not a valid side type", s))
	}
	return nil
}

// Item is an immutable-by-default line item on an order or in a cart.
// The only mutation an item supports after construction is the admin price
// override, applied through the owning order's SetItemPrice.
//
// Pricing fields:
//   - catalogPrice: the catalog snapshot taken when the item was added (subject items)
//   - userPrice: the admin-assigned override; nil means "awaiting price"
type Item struct { //nolint:recvcheck //using for validation
	kind         ItemKind
	subjectID    *kernel.UUID
	title        string
	pdfURL       string
	qty          int
	sides        SideType
	catalogPrice *float64
	userPrice    *float64

	guard guard.ConstructorGuard
}

// NewSubjectItem creates a catalog line item with a known price snapshot.
func NewSubjectItem(subjectID kernel.UUID, title string, qty int, sides SideType, price float64) (Item, error) {
	if err := subjectID.Validate(); err != nil {
		return Item{}, err
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidError("price")
	}

	item := Item{
		kind:         ItemKindSubject,
		subjectID:    &subjectID,
		catalogPrice: &price,
		guard:        guard.NewConstructorGuard(),
	}
	if err := item.setCommon(title, qty, sides); err != nil {
		return Item{}, err
	}

	return item, nil
}

// NewCustomItem creates a line item for a user-uploaded document.
// userPrice carries the price accepted from a priced PDF request, or nil when
// the item still awaits admin pricing.
func NewCustomItem(title string, pdfURL string, qty int, sides SideType, userPrice *float64) (Item, error) {
	if pdfURL == "" {
		return Item{}, errs.NewValueIsRequiredError("pdfUrl")
	}
	if userPrice != nil && *userPrice < 0 {
		return Item{}, errs.NewValueIsInvalidError("userPrice")
	}

	item := Item{
		kind:      ItemKindCustom,
		pdfURL:    pdfURL,
		userPrice: userPrice,
		guard:     guard.NewConstructorGuard(),
	}
	if err := item.setCommon(title, qty, sides); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence without re-running the
// kind-specific constructors.
func RestoreItem(
	kind ItemKind,
	subjectID *kernel.UUID,
	title string,
	pdfURL string,
	qty int,
	sides SideType,
	catalogPrice *float64,
	userPrice *float64,
) (Item, error) {
	if err := kind.Validate(); err != nil {
		return Item{}, err
	}

	item := Item{
		kind:         kind,
		subjectID:    subjectID,
		pdfURL:       pdfURL,
		catalogPrice: catalogPrice,
		userPrice:    userPrice,
		guard:        guard.NewConstructorGuard(),
	}
	if err := item.setCommon(title, qty, sides); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Kind returns the item kind.
func (i Item) Kind() ItemKind {
	return i.kind
}

// SubjectID returns the catalog reference for subject items, nil otherwise.
func (i Item) SubjectID() *kernel.UUID {
	return i.subjectID
}

// Title returns the display title of the item.
func (i Item) Title() string {
	return i.title
}

// PDFURL returns the durable blob URL for custom items, empty otherwise.
func (i Item) PDFURL() string {
	return i.pdfURL
}

// Qty returns the number of copies ordered.
func (i Item) Qty() int {
	return i.qty
}

// Sides returns the printing side type.
func (i Item) Sides() SideType {
	return i.sides
}

// CatalogPrice returns the catalog price snapshot, nil when absent.
func (i Item) CatalogPrice() *float64 {
	return i.catalogPrice
}

// UserPrice returns the admin-assigned price override, nil while awaiting one.
func (i Item) UserPrice() *float64 {
	return i.userPrice
}

// UnitPrice resolves the effective unit price: the admin override wins, then
// the catalog snapshot, then zero. A zero here is intentional: partial totals
// are allowed while custom items await pricing.
func (i Item) UnitPrice() float64 {
	if i.userPrice != nil {
		return *i.userPrice
	}
	if i.catalogPrice != nil {
		return *i.catalogPrice
	}
	return 0
}

// Subtotal returns the resolved unit price multiplied by quantity.
func (i Item) Subtotal() float64 {
	return i.UnitPrice() * float64(i.qty)
}

// AwaitsPrice reports whether the item is a custom upload still lacking an
// admin-assigned price.
func (i Item) AwaitsPrice() bool {
	return i.kind == ItemKindCustom && i.userPrice == nil
}

func (i *Item) setCommon(title string, qty int, sides SideType) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	if err := sides.Validate(); err != nil {
		return err
	}

	i.title = title
	i.qty = qty
	i.sides = sides
	return nil
}

func (i *Item) setUserPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	i.userPrice = &price
	return nil
}

// ComputeAmount is the pricing resolver: the total of all resolved line-item
// subtotals. The stored order amount is a cache of this function and is
// recomputed whenever any item's price override changes.
func ComputeAmount(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
