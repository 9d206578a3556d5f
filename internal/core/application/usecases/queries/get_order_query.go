package queries

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its human-facing code.
// Non-admin requesters may only read their own orders.
type GetOrderQuery struct {
	orderCode   string
	requesterID string
	isAdmin     bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(requesterID, orderCode string, isAdmin bool) (GetOrderQuery, error) {
	if requesterID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("requesterID")
	}
	if err := order.ValidateCode(orderCode); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderCode:   orderCode,
		requesterID: requesterID,
		isAdmin:     isAdmin,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderCode returns the requested order code.
func (q GetOrderQuery) OrderCode() string {
	return q.orderCode
}

// RequesterID returns the identity making the request.
func (q GetOrderQuery) RequesterID() string {
	return q.requesterID
}

// IsAdmin reports whether the requester holds the admin role.
func (q GetOrderQuery) IsAdmin() bool {
	return q.isAdmin
}
