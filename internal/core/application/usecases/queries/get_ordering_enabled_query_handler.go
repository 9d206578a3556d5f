package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GetOrderingEnabledQueryHandler reads the ordering switch from the database.
type GetOrderingEnabledQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderingEnabledQueryHandler creates a handler for the ordering switch.
func NewGetOrderingEnabledQueryHandler(db *gorm.DB) GetOrderingEnabledQueryHandler {
	return GetOrderingEnabledQueryHandler{db: db}
}

// Handle executes the query. Ordering defaults to enabled until an admin
// writes the switch.
func (h GetOrderingEnabledQueryHandler) Handle(
	ctx context.Context,
	query GetOrderingEnabledQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var enabled bool
	err := h.db.WithContext(ctx).
		Table("settings").
		Select("ordering_enabled").
		Take(&enabled).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}

	return enabled, nil
}
