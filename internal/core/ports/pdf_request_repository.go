package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/pdfrequest"
)

// PDFRequestRepository defines the persistence contract for custom-PDF price
// request aggregates.
type PDFRequestRepository interface {
	// Add persists a new request aggregate to storage.
	Add(ctx context.Context, aggregate *pdfrequest.Request) error

	// Update persists changes to an existing request aggregate.
	Update(ctx context.Context, aggregate *pdfrequest.Request) error

	// Get retrieves a request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pdfrequest.Request, error)

	// GetByCode retrieves a request aggregate by its human-facing code.
	GetByCode(ctx context.Context, code string) (*pdfrequest.Request, error)

	// ExistsByCode reports whether any request carries the given code.
	// Used by the collision-checked code generation loop.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// GetAllByUser retrieves all requests created by the given identity,
	// newest first.
	GetAllByUser(ctx context.Context, userID string) ([]*pdfrequest.Request, error)

	// GetAll retrieves all requests, newest first. Admin listing.
	GetAll(ctx context.Context) ([]*pdfrequest.Request, error)

	// Delete removes a request by its human-facing code.
	Delete(ctx context.Context, code string) error

	// DeleteClosedOlderThan removes cancelled and added_to_cart requests
	// created more than maxAgeDays ago. Returns the number removed.
	DeleteClosedOlderThan(ctx context.Context, maxAgeDays int) (int64, error)
}
