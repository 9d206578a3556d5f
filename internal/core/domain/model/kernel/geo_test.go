package kernel_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(16.4419, 80.6226)

		require.NoError(t, err)
		assert.InDelta(t, 16.4419, point.Lat(), 0.0001)
		assert.InDelta(t, 80.6226, point.Lng(), 0.0001)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := [][2]float64{
			{kernel.LatMin, kernel.LngMin},
			{kernel.LatMax, kernel.LngMax},
			{0, 0},
		}

		for _, b := range boundaries {
			_, err := kernel.NewGeoPoint(b[0], b[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		for _, lat := range []float64{-90.01, 95, 1000} {
			_, err := kernel.NewGeoPoint(lat, 0)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		for _, lng := range []float64{-180.01, 181, 720} {
			_, err := kernel.NewGeoPoint(0, lng)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	p1, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	p2, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	p3, err := kernel.NewGeoPoint(10, 21)
	require.NoError(t, err)

	assert.True(t, p1.IsEqual(p2))
	assert.False(t, p1.IsEqual(p3))
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(10.5, -20.25)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(10.5,-20.25)", point.String())
}
