package http

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// ItemPayload represents one order or cart line in request bodies.
type ItemPayload struct {
	Kind         string   `json:"kind"`
	SubjectID    *string  `json:"subjectId,omitempty"`
	Title        string   `json:"title"`
	PDFURL       string   `json:"pdfUrl,omitempty"`
	Qty          int      `json:"qty"`
	Sides        string   `json:"sides"`
	CatalogPrice *float64 `json:"catalogPrice,omitempty"`
	UserPrice    *float64 `json:"userPrice,omitempty"`
}

// PaymentPayload represents payment details in request bodies.
type PaymentPayload struct {
	Kind            string  `json:"kind"`
	ScreenshotURL   string  `json:"screenshotUrl,omitempty"`
	PaidAmount      float64 `json:"paidAmount,omitempty"`
	RemainingAmount float64 `json:"remainingAmount,omitempty"`
}

// CreateOrderPayload is the body of POST /orders.
type CreateOrderPayload struct {
	Items            []ItemPayload   `json:"items"`
	Amount           float64         `json:"amount"`
	StudentName      string          `json:"studentName"`
	StudentCollegeID string          `json:"studentCollegeId,omitempty"`
	StudentPhone     string          `json:"studentPhone,omitempty"`
	PickupPoint      string          `json:"pickupPoint,omitempty"`
	Payment          *PaymentPayload `json:"payment,omitempty"`
}

// CreatePDFRequestPayload is the body of POST /pdf-requests.
type CreatePDFRequestPayload struct {
	Title  string `json:"title"`
	PDFURL string `json:"pdfUrl"`
	Qty    int    `json:"qty"`
	Sides  string `json:"sides"`
}

// SetPricePayload carries an admin-assigned price.
type SetPricePayload struct {
	Price float64 `json:"price"`
}

// UpdateStatusPayload carries the target status of an order.
type UpdateStatusPayload struct {
	Status string `json:"status"`
}

// ToggleLiveLocationPayload carries the live-location switch.
type ToggleLiveLocationPayload struct {
	Enabled bool `json:"enabled"`
}

// UpdateDeliveryDaysPayload carries the delivery estimate.
type UpdateDeliveryDaysPayload struct {
	DeliveryDays int `json:"deliveryDays"`
}

// UpdateCartItemPayload is the body of PUT /cart/items/:index.
type UpdateCartItemPayload struct {
	Qty   int    `json:"qty"`
	Sides string `json:"sides"`
}

// OrderingEnabledPayload carries the storefront ordering switch.
type OrderingEnabledPayload struct {
	Enabled bool `json:"enabled"`
}

func (p ItemPayload) toDomain() (order.Item, error) {
	kind, err := order.ItemKindFromString(p.Kind)
	if err != nil {
		return order.Item{}, err
	}
	sides, err := order.SideTypeFromString(p.Sides)
	if err != nil {
		return order.Item{}, err
	}

	var subjectID *kernel.UUID
	if p.SubjectID != nil {
		id, idErr := kernel.UUIDFromString(*p.SubjectID)
		if idErr != nil {
			return order.Item{}, idErr
		}
		subjectID = &id
	}

	return order.RestoreItem(
		kind, subjectID, p.Title, p.PDFURL,
		p.Qty, sides, p.CatalogPrice, p.UserPrice)
}

func itemsToDomain(payloads []ItemPayload) ([]order.Item, error) {
	items := make([]order.Item, 0, len(payloads))
	for _, payload := range payloads {
		item, err := payload.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
