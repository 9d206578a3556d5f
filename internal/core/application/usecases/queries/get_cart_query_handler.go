package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a user's cart from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. A user without a persisted cart gets an empty
// response rather than a not-found error.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	response := CartResponse{
		UserID: query.UserID(),
		Items:  []OrderItemResponse{},
	}

	var cartID uuid.UUID
	err := h.db.WithContext(ctx).
		Table("carts").
		Select("id").
		Where("user_id = ?", query.UserID()).
		Take(&cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, nil
		}
		return CartResponse{}, err
	}

	var items []itemRow
	err = h.db.WithContext(ctx).
		Table("cart_items").
		Where("cart_id = ?", cartID).
		Order("idx ASC").
		Find(&items).Error
	if err != nil {
		return CartResponse{}, err
	}

	for _, item := range items {
		mapped := itemToResponse(item)
		response.Items = append(response.Items, mapped)
		response.Total += mapped.Subtotal
	}

	return response, nil
}
