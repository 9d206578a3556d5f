package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrGetOrderingEnabledQueryIsNotConstructed = errors.New(
	"GetOrderingEnabledQuery must be created via NewGetOrderingEnabledQuery constructor",
)

// GetOrderingEnabledQuery reads the storefront ordering switch.
type GetOrderingEnabledQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderingEnabledQuery creates a query for the ordering switch.
func NewGetOrderingEnabledQuery() GetOrderingEnabledQuery {
	return GetOrderingEnabledQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderingEnabledQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderingEnabledQueryIsNotConstructed)
}
