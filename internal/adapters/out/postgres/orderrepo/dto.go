// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The human-facing code carries a unique index because it is the public lookup
// key and the collision check for code generation.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code                string    `gorm:"uniqueIndex;size:8"`
	UserID              string    `gorm:"index;size:64"`
	Amount              float64
	Status              string `gorm:"index;size:20"`
	CanCancel           bool
	PaymentKind         *string `gorm:"size:8"`
	PaymentScreenshot   string
	PaymentPaid         float64
	PaymentRemaining    float64
	StudentName         string
	StudentCollegeID    string
	StudentPhone        string
	PickupPoint         string
	PriceSetByAdmin     bool
	LiveLocationEnabled bool
	DeliveryLat         *float64
	DeliveryLng         *float64
	DeliveryDays        int
	CreatedAt           time.Time `gorm:"index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row. Idx preserves the original item
// order within the aggregate.
type OrderItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
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

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Code:                aggregate.Code(),
		UserID:              aggregate.UserID(),
		Amount:              aggregate.Amount(),
		Status:              aggregate.Status().String(),
		CanCancel:           aggregate.CanCancel(),
		StudentName:         aggregate.StudentInfo().Name,
		StudentCollegeID:    aggregate.StudentInfo().CollegeID,
		StudentPhone:        aggregate.StudentInfo().Phone,
		PickupPoint:         aggregate.PickupPoint(),
		PriceSetByAdmin:     aggregate.PriceSetByAdmin(),
		LiveLocationEnabled: aggregate.LiveLocationEnabled(),
		DeliveryDays:        aggregate.DeliveryDays(),
		CreatedAt:           aggregate.CreatedAt(),
	}

	if payment := aggregate.Payment(); payment != nil {
		kind := payment.Kind().String()
		dto.PaymentKind = &kind
		dto.PaymentScreenshot = payment.ScreenshotURL()
		dto.PaymentPaid = payment.PaidAmount()
		dto.PaymentRemaining = payment.RemainingAmount()
	}

	if point := aggregate.DeliveryLocation(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.DeliveryLat = &lat
		dto.DeliveryLng = &lng
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(dto.ID, i, item))
	}

	return dto
}

func itemFromDomain(orderID uuid.UUID, idx int, item order.Item) OrderItemDTO {
	var subjectID *uuid.UUID
	if id := item.SubjectID(); id != nil {
		raw := id.Bytes()
		subjectID = &raw
	}

	return OrderItemDTO{
		OrderID:      orderID,
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

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	var payment *order.Payment
	if dto.PaymentKind != nil {
		kind, kindErr := order.PaymentKindFromString(*dto.PaymentKind)
		if kindErr != nil {
			return nil, kindErr
		}
		restored, payErr := order.RestorePayment(kind, dto.PaymentScreenshot, dto.PaymentPaid, dto.PaymentRemaining)
		if payErr != nil {
			return nil, payErr
		}
		payment = &restored
	}

	var location *kernel.GeoPoint
	if dto.DeliveryLat != nil && dto.DeliveryLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return order.RestoreOrder(
		id, dto.Code, dto.UserID, items, dto.Amount, status, dto.CanCancel,
		payment,
		order.Student{
			Name:      dto.StudentName,
			CollegeID: dto.StudentCollegeID,
			Phone:     dto.StudentPhone,
		},
		dto.PickupPoint, dto.PriceSetByAdmin, dto.LiveLocationEnabled,
		location, dto.DeliveryDays, dto.CreatedAt)
}

func itemsToDomain(dtos []OrderItemDTO) ([]order.Item, error) {
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
