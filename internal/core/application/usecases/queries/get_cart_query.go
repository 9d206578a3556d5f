package queries

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a user's cart.
type GetCartQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given user's cart.
func NewGetCartQuery(userID string) (GetCartQuery, error) {
	if userID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the identity whose cart is requested.
func (q GetCartQuery) UserID() string {
	return q.userID
}
