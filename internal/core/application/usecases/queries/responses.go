// Package queries contains the read side of the application. Handlers read
// the storefront tables directly and return wire-ready response structs,
// bypassing the domain aggregates.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemResponse represents a single order or cart line in read models.
type OrderItemResponse struct {
	Kind         string   `json:"kind"`
	SubjectID    *string  `json:"subjectId,omitempty"`
	Title        string   `json:"title"`
	PDFURL       string   `json:"pdfUrl,omitempty"`
	Qty          int      `json:"qty"`
	Sides        string   `json:"sides"`
	CatalogPrice *float64 `json:"catalogPrice,omitempty"`
	UserPrice    *float64 `json:"userPrice,omitempty"`
	UnitPrice    float64  `json:"unitPrice"`
	Subtotal     float64  `json:"subtotal"`
	AwaitsPrice  bool     `json:"awaitsPrice"`
}

// PaymentResponse represents payment details attached to an order.
type PaymentResponse struct {
	Kind            string  `json:"kind"`
	ScreenshotURL   string  `json:"screenshotUrl,omitempty"`
	PaidAmount      float64 `json:"paidAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
}

// GeoPointResponse represents a delivery coordinate.
type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderResponse represents a full order in read models.
type OrderResponse struct {
	ID                  string              `json:"id"`
	Code                string              `json:"code"`
	UserID              string              `json:"userId"`
	Status              string              `json:"status"`
	Amount              float64             `json:"amount"`
	CanCancel           bool                `json:"canCancel"`
	Payment             *PaymentResponse    `json:"payment,omitempty"`
	StudentName         string              `json:"studentName"`
	StudentCollegeID    string              `json:"studentCollegeId,omitempty"`
	StudentPhone        string              `json:"studentPhone,omitempty"`
	PickupPoint         string              `json:"pickupPoint"`
	PriceSetByAdmin     bool                `json:"priceSetByAdmin"`
	LiveLocationEnabled bool                `json:"liveLocationEnabled"`
	DeliveryLocation    *GeoPointResponse   `json:"deliveryLocation,omitempty"`
	DeliveryDays        int                 `json:"deliveryDays"`
	CreatedAt           time.Time           `json:"createdAt"`
	Items               []OrderItemResponse `json:"items"`
}

// RequestResponse represents a custom-PDF price request in read models.
type RequestResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	PDFURL    string    `json:"pdfUrl"`
	Qty       int       `json:"qty"`
	Sides     string    `json:"sides"`
	Price     *float64  `json:"price,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartResponse represents a user's cart in read models.
type CartResponse struct {
	UserID string              `json:"userId"`
	Items  []OrderItemResponse `json:"items"`
	Total  float64             `json:"total"`
}

// orderRow mirrors the orders table for read-model scans.
type orderRow struct {
	ID                  uuid.UUID
	Code                string
	UserID              string
	Amount              float64
	Status              string
	CanCancel           bool
	PaymentKind         *string
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
	CreatedAt           time.Time
}

// itemRow mirrors the order_items and cart_items tables for read-model scans.
type itemRow struct {
	OrderID      uuid.UUID
	CartID       uuid.UUID
	Idx          int
	Kind         string
	SubjectID    *uuid.UUID
	Title        string
	PDFURL       string
	Qty          int
	Sides        string
	CatalogPrice *float64
	UserPrice    *float64
}

// requestRow mirrors the pdf_requests table for read-model scans.
type requestRow struct {
	ID        uuid.UUID
	Code      string
	UserID    string
	Title     string
	PDFURL    string
	Qty       int
	Sides     string
	Price     *float64
	Status    string
	CreatedAt time.Time
}

func itemToResponse(row itemRow) OrderItemResponse {
	resp := OrderItemResponse{
		Kind:         row.Kind,
		Title:        row.Title,
		PDFURL:       row.PDFURL,
		Qty:          row.Qty,
		Sides:        row.Sides,
		CatalogPrice: row.CatalogPrice,
		UserPrice:    row.UserPrice,
		AwaitsPrice:  row.CatalogPrice == nil && row.UserPrice == nil,
	}
	if row.SubjectID != nil {
		id := row.SubjectID.String()
		resp.SubjectID = &id
	}

	switch {
	case row.UserPrice != nil:
		resp.UnitPrice = *row.UserPrice
	case row.CatalogPrice != nil:
		resp.UnitPrice = *row.CatalogPrice
	}
	resp.Subtotal = resp.UnitPrice * float64(row.Qty)

	return resp
}

func orderToResponse(row orderRow, items []itemRow) OrderResponse {
	resp := OrderResponse{
		ID:                  row.ID.String(),
		Code:                row.Code,
		UserID:              row.UserID,
		Status:              row.Status,
		Amount:              row.Amount,
		CanCancel:           row.CanCancel,
		StudentName:         row.StudentName,
		StudentCollegeID:    row.StudentCollegeID,
		StudentPhone:        row.StudentPhone,
		PickupPoint:         row.PickupPoint,
		PriceSetByAdmin:     row.PriceSetByAdmin,
		LiveLocationEnabled: row.LiveLocationEnabled,
		DeliveryDays:        row.DeliveryDays,
		CreatedAt:           row.CreatedAt,
		Items:               make([]OrderItemResponse, 0, len(items)),
	}

	if row.PaymentKind != nil {
		resp.Payment = &PaymentResponse{
			Kind:            *row.PaymentKind,
			ScreenshotURL:   row.PaymentScreenshot,
			PaidAmount:      row.PaymentPaid,
			RemainingAmount: row.PaymentRemaining,
		}
	}
	if row.DeliveryLat != nil && row.DeliveryLng != nil {
		resp.DeliveryLocation = &GeoPointResponse{Lat: *row.DeliveryLat, Lng: *row.DeliveryLng}
	}

	for _, item := range items {
		resp.Items = append(resp.Items, itemToResponse(item))
	}

	return resp
}

func requestToResponse(row requestRow) RequestResponse {
	return RequestResponse{
		ID:        row.ID.String(),
		Code:      row.Code,
		UserID:    row.UserID,
		Title:     row.Title,
		PDFURL:    row.PDFURL,
		Qty:       row.Qty,
		Sides:     row.Sides,
		Price:     row.Price,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

// loadOrderResponses fetches the items for a page of order rows and maps both
// to responses, preserving the row order.
func loadOrderResponses(ctx context.Context, db *gorm.DB, rows []orderRow) ([]OrderResponse, error) {
	if len(rows) == 0 {
		return []OrderResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var items []itemRow
	err := db.WithContext(ctx).
		Table("order_items").
		Where("order_id IN ?", ids).
		Order("idx ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]itemRow, len(rows))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, orderToResponse(row, byOrder[row.ID]))
	}

	return responses, nil
}
