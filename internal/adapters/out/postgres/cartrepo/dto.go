// Package cartrepo provides data transfer objects and mapping functions
// for cart persistence.
package cartrepo

import (
	"printshop/internal/core/domain/model/cart"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	ID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID string        `gorm:"uniqueIndex;size:64"`
	Items  []CartItemDTO `gorm:"foreignKey:CartID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents a single line of a cart in the database. Idx keeps
// the user's insertion order stable across reads.
type CartItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	CartID       uuid.UUID `gorm:"type:uuid;index"`
	Idx          int
	Kind         string `gorm:"size:10"`
	SubjectID    *uuid.UUID
	Title        string
	PDFURL       string
	Qty          int
	Sides        string `gorm:"size:10"`
	CatalogPrice *float64
	UserPrice    *float64
}

// TableName specifies the database table name for cart item entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	dto := CartDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID(),
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(dto.ID, i, item))
	}

	return dto
}

func itemFromDomain(cartID uuid.UUID, idx int, item order.Item) CartItemDTO {
	var subjectID *uuid.UUID
	if id := item.SubjectID(); id != nil {
		raw := id.Bytes()
		subjectID = &raw
	}

	return CartItemDTO{
		CartID:       cartID,
		Idx:          idx,
		Kind:         item.Kind().String(),
		SubjectID:    subjectID,
		Title:        item.Title(),
		PDFURL:       item.PDFURL(),
		Qty:          item.Qty(),
		Sides:        item.Sides().String(),
		CatalogPrice: item.CatalogPrice(),
		UserPrice:    item.UserPrice(),
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCart(id, dto.UserID, items)
}

func itemsToDomain(dtos []CartItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		kind, err := order.ItemKindFromString(dto.Kind)
		if err != nil {
			return nil, err
		}
		sides, err := order.SideTypeFromString(dto.Sides)
		if err != nil {
			return nil, err
		}

		var subjectID *kernel.UUID
		if dto.SubjectID != nil {
			id, idErr := kernel.UUIDFromBytes((*dto.SubjectID)[:])
			if idErr != nil {
				return nil, idErr
			}
			subjectID = &id
		}

		item, err := order.RestoreItem(
			kind, subjectID, dto.Title, dto.PDFURL,
			dto.Qty, sides, dto.CatalogPrice, dto.UserPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
