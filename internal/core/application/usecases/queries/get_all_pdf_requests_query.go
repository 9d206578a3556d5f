package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrGetAllPDFRequestsQueryIsNotConstructed = errors.New(
	"GetAllPDFRequestsQuery must be created via NewGetAllPDFRequestsQuery constructor",
)

// GetAllPDFRequestsQuery retrieves every price request, newest first.
// Reserved for the admin dashboard.
type GetAllPDFRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPDFRequestsQuery creates a query for the full request list.
func NewGetAllPDFRequestsQuery() GetAllPDFRequestsQuery {
	return GetAllPDFRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPDFRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPDFRequestsQueryIsNotConstructed)
}
