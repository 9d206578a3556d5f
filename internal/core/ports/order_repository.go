package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lookups by the human-facing O#### code serve the public API; lookups by
// UUID serve internal wiring.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its human-facing code.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// ExistsByCode reports whether any order carries the given code.
	// Used by the collision-checked code generation loop.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// GetAllByUser retrieves all orders created by the given identity,
	// newest first.
	GetAllByUser(ctx context.Context, userID string) ([]*order.Order, error)

	// GetAll retrieves all orders, newest first. Admin listing.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order by its human-facing code.
	Delete(ctx context.Context, code string) error

	// DeleteTerminalOlderThan removes delivered and cancelled orders created
	// more than maxAgeDays ago. Returns the number of orders removed.
	DeleteTerminalOlderThan(ctx context.Context, maxAgeDays int) (int64, error)
}
