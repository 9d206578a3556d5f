package ports

import (
	"context"

	"printshop/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for the per-user cart.
// GetByUser returns errs.ErrObjectNotFound when the user has no cart yet;
// callers that tolerate an empty cart create one on demand.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByUser retrieves the cart owned by the given identity.
	GetByUser(ctx context.Context, userID string) (*cart.Cart, error)
}
