package queries

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery retrieves all orders created by a single user, newest first.
type GetMyOrdersQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for the given user's order history.
func NewGetMyOrdersQuery(userID string) (GetMyOrdersQuery, error) {
	if userID == "" {
		return GetMyOrdersQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetMyOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// UserID returns the identity whose orders are requested.
func (q GetMyOrdersQuery) UserID() string {
	return q.userID
}
