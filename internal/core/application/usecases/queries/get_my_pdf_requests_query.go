package queries

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetMyPDFRequestsQueryIsNotConstructed = errors.New(
	"GetMyPDFRequestsQuery must be created via NewGetMyPDFRequestsQuery constructor",
)

// GetMyPDFRequestsQuery retrieves all price requests created by a single
// user, newest first.
type GetMyPDFRequestsQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetMyPDFRequestsQuery creates a query for the given user's requests.
func NewGetMyPDFRequestsQuery(userID string) (GetMyPDFRequestsQuery, error) {
	if userID == "" {
		return GetMyPDFRequestsQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetMyPDFRequestsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyPDFRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyPDFRequestsQueryIsNotConstructed)
}

// UserID returns the identity whose requests are requested.
func (q GetMyPDFRequestsQuery) UserID() string {
	return q.userID
}
