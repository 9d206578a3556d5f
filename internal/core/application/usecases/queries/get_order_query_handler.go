package queries

import (
	"context"
	"errors"

	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ErrObjectNotFound when the code is
// unknown and ErrNotAuthorized when a non-admin requests another user's order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("code = ?", query.OrderCode()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderCode())
		}
		return OrderResponse{}, err
	}

	if !query.IsAdmin() && row.UserID != query.RequesterID() {
		return OrderResponse{}, errs.NewNotAuthorizedError("order belongs to another user")
	}

	responses, err := loadOrderResponses(ctx, h.db, []orderRow{row})
	if err != nil {
		return OrderResponse{}, err
	}

	return responses[0], nil
}
