package pdfrequest_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *pdfrequest.Request {
	t.Helper()
	r, err := pdfrequest.NewRequest(
		kernel.NewUUID(), "REQ1234", "user-1",
		"Thesis Draft", "https://blob/thesis.pdf", 2, order.SideDouble)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("starts pending without a price", func(t *testing.T) {
		r := newTestRequest(t)

		assert.Equal(t, pdfrequest.StatusPending, r.Status())
		assert.Nil(t, r.Price())
		assert.Equal(t, "REQ1234", r.Code())
		assert.Equal(t, 2, r.Qty())
		assert.Equal(t, order.SideDouble, r.Sides())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := pdfrequest.NewRequest(kernel.UUID{}, "REQ0001", "user-1", "T", "https://blob/t.pdf", 1, order.SideSingle)
		require.Error(t, err)

		_, err = pdfrequest.NewRequest(id, "O1234", "user-1", "T", "https://blob/t.pdf", 1, order.SideSingle)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = pdfrequest.NewRequest(id, "REQ0001", "", "T", "https://blob/t.pdf", 1, order.SideSingle)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = pdfrequest.NewRequest(id, "REQ0001", "user-1", "", "https://blob/t.pdf", 1, order.SideSingle)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = pdfrequest.NewRequest(id, "REQ0001", "user-1", "T", "", 1, order.SideSingle)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = pdfrequest.NewRequest(id, "REQ0001", "user-1", "T", "https://blob/t.pdf", 0, order.SideSingle)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = pdfrequest.NewRequest(id, "REQ0001", "user-1", "T", "https://blob/t.pdf", 1, order.SideUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRequest_SetPrice(t *testing.T) {
	t.Run("prices a pending request", func(t *testing.T) {
		r := newTestRequest(t)

		require.NoError(t, r.SetPrice(75))

		assert.Equal(t, pdfrequest.StatusPriced, r.Status())
		require.NotNil(t, r.Price())
		assert.InDelta(t, 75.0, *r.Price(), 0.001)
	})

	t.Run("accepts a zero price", func(t *testing.T) {
		r := newTestRequest(t)

		require.NoError(t, r.SetPrice(0))

		assert.Equal(t, pdfrequest.StatusPriced, r.Status())
	})

	t.Run("rejects repricing and negative prices", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.SetPrice(75))

		require.ErrorIs(t, r.SetPrice(80), errs.ErrInvalidTransition)

		fresh := newTestRequest(t)
		require.ErrorIs(t, fresh.SetPrice(-1), errs.ErrValueIsInvalid)
		assert.Equal(t, pdfrequest.StatusPending, fresh.Status())
	})

	t.Run("rejects pricing a cancelled request", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Cancel())

		require.ErrorIs(t, r.SetPrice(75), errs.ErrInvalidTransition)
	})
}

func TestRequest_Cancel(t *testing.T) {
	t.Run("cancels pending and priced requests", func(t *testing.T) {
		pending := newTestRequest(t)
		require.NoError(t, pending.Cancel())
		assert.Equal(t, pdfrequest.StatusCancelled, pending.Status())

		priced := newTestRequest(t)
		require.NoError(t, priced.SetPrice(50))
		require.NoError(t, priced.Cancel())
		assert.Equal(t, pdfrequest.StatusCancelled, priced.Status())
	})

	t.Run("rejects cancelling a closed request", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.SetPrice(50))
		require.NoError(t, r.MarkAddedToCart())

		require.ErrorIs(t, r.Cancel(), errs.ErrInvalidTransition)

		cancelled := newTestRequest(t)
		require.NoError(t, cancelled.Cancel())
		require.ErrorIs(t, cancelled.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestRequest_MarkAddedToCart(t *testing.T) {
	t.Run("consumes a priced request", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.SetPrice(50))

		require.NoError(t, r.MarkAddedToCart())

		assert.Equal(t, pdfrequest.StatusAddedToCart, r.Status())
	})

	t.Run("rejects unpriced and already-consumed requests", func(t *testing.T) {
		pending := newTestRequest(t)
		require.ErrorIs(t, pending.MarkAddedToCart(), errs.ErrInvalidTransition)

		consumed := newTestRequest(t)
		require.NoError(t, consumed.SetPrice(50))
		require.NoError(t, consumed.MarkAddedToCart())
		require.ErrorIs(t, consumed.MarkAddedToCart(), errs.ErrInvalidTransition)

		cancelled := newTestRequest(t)
		require.NoError(t, cancelled.Cancel())
		require.ErrorIs(t, cancelled.MarkAddedToCart(), errs.ErrInvalidTransition)
	})
}

func TestRequest_ToCartItem(t *testing.T) {
	t.Run("builds a priced custom item", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.SetPrice(50))

		item, err := r.ToCartItem()

		require.NoError(t, err)
		assert.Equal(t, order.ItemKindCustom, item.Kind())
		assert.Equal(t, "Thesis Draft", item.Title())
		assert.Equal(t, "https://blob/thesis.pdf", item.PDFURL())
		assert.False(t, item.AwaitsPrice())
		assert.InDelta(t, 100.0, item.Subtotal(), 0.001)
	})

	t.Run("fails for unpriced requests", func(t *testing.T) {
		r := newTestRequest(t)

		_, err := r.ToCartItem()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequest_Ownership(t *testing.T) {
	r := newTestRequest(t)

	assert.True(t, r.IsOwnedBy("user-1"))
	assert.False(t, r.IsOwnedBy("user-2"))
}

func TestRestoreRequest(t *testing.T) {
	t.Run("round-trips a priced request", func(t *testing.T) {
		price := 50.0
		createdAt := time.Now().Add(-time.Hour).UTC()

		r, err := pdfrequest.RestoreRequest(
			kernel.NewUUID(), "REQ9999", "user-7",
			"Lab Report", "https://blob/lab.pdf", 1, order.SideSingle,
			&price, pdfrequest.StatusPriced, createdAt)

		require.NoError(t, err)
		assert.Equal(t, pdfrequest.StatusPriced, r.Status())
		assert.Equal(t, createdAt, r.CreatedAt())
		require.NotNil(t, r.Price())
		assert.InDelta(t, 50.0, *r.Price(), 0.001)
	})

	t.Run("rejects invalid stored values", func(t *testing.T) {
		_, err := pdfrequest.RestoreRequest(
			kernel.NewUUID(), "REQ9999", "user-7",
			"Lab Report", "https://blob/lab.pdf", 1, order.SideSingle,
			nil, pdfrequest.StatusUnknown, time.Now())
		require.Error(t, err)

		bad := -5.0
		_, err = pdfrequest.RestoreRequest(
			kernel.NewUUID(), "REQ9999", "user-7",
			"Lab Report", "https://blob/lab.pdf", 1, order.SideSingle,
			&bad, pdfrequest.StatusPriced, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRequest_Validate(t *testing.T) {
	var nilRequest *pdfrequest.Request
	require.Error(t, nilRequest.Validate())

	var zero pdfrequest.Request
	require.Error(t, zero.Validate())
}

func TestNewRandomCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		require.NoError(t, pdfrequest.ValidateCode(pdfrequest.NewRandomCode()))
	}
}

func TestValidateCode(t *testing.T) {
	assert.NoError(t, pdfrequest.ValidateCode("REQ0000"))
	assert.ErrorIs(t, pdfrequest.ValidateCode(""), errs.ErrValueIsRequired)
	assert.ErrorIs(t, pdfrequest.ValidateCode("REQ123"), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, pdfrequest.ValidateCode("O1234"), errs.ErrValueIsInvalid)
}
