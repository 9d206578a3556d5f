package queries_test

import (
	"testing"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetMyOrdersQuery_Validation(t *testing.T) {
	_, err := queries.NewGetMyOrdersQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetMyOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetMyOrdersQueryIsNotConstructed)
}

func TestGetOrderQuery_Validation(t *testing.T) {
	_, err := queries.NewGetOrderQuery("", "O1234", false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrderQuery("user-1", "bad-code", false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero queries.GetOrderQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetAllOrdersQuery_Validation(t *testing.T) {
	require.NoError(t, queries.NewGetAllOrdersQuery().Validate())

	var zero queries.GetAllOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestGetMyPDFRequestsQuery_Validation(t *testing.T) {
	_, err := queries.NewGetMyPDFRequestsQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetCartQuery_Validation(t *testing.T) {
	_, err := queries.NewGetCartQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetCartQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetCartQueryIsNotConstructed)
}

func TestGetOrderingEnabledQuery_Validation(t *testing.T) {
	require.NoError(t, queries.NewGetOrderingEnabledQuery().Validate())

	var zero queries.GetOrderingEnabledQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderingEnabledQueryIsNotConstructed)
}
