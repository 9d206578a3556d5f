package pdfrequest_test

import (
	"testing"

	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	cases := map[string]pdfrequest.Status{
		"pending":       pdfrequest.StatusPending,
		"priced":        pdfrequest.StatusPriced,
		"added_to_cart": pdfrequest.StatusAddedToCart,
		"cancelled":     pdfrequest.StatusCancelled,
	}
	for wire, want := range cases {
		status, err := pdfrequest.StatusFromString(wire)
		require.NoError(t, err)
		assert.Equal(t, want, status)
		assert.Equal(t, wire, status.String())
	}

	_, err := pdfrequest.StatusFromString("approved")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, pdfrequest.StatusPending.Validate())
	assert.NoError(t, pdfrequest.StatusCancelled.Validate())
	assert.ErrorIs(t, pdfrequest.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, pdfrequest.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, pdfrequest.StatusPending.IsTerminal())
	assert.False(t, pdfrequest.StatusPriced.IsTerminal())
	assert.True(t, pdfrequest.StatusAddedToCart.IsTerminal())
	assert.True(t, pdfrequest.StatusCancelled.IsTerminal())
}
