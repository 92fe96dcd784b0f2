package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffrey-newman/raster-tools/raster"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := raster.NewDense[int](0, 2)
	require.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

func TestDense_SetAtRoundTrip(t *testing.T) {
	d, err := raster.NewDense[int](2, 3)
	require.NoError(t, err)

	d.Set(1, 2, 7)
	assert.Equal(t, 7, d.At(1, 2))
	assert.Equal(t, 7, d.AtIndex(1*3+2))
}

func TestNewDenseFromRows(t *testing.T) {
	d, err := raster.NewDenseFromRows([][]int{
		{1, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	assert.Equal(t, 1, d.At(0, 0))
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0}, d.Raw())
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := raster.NewDenseFromRows([][]int{{1, 2}, {1}})
	require.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

func TestDenseMaker(t *testing.T) {
	model, err := raster.NewDense[int](2, 2)
	require.NoError(t, err)

	maker := raster.DenseMaker[float64]()
	out := maker(model)
	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, 2, out.Cols())
	assert.Equal(t, 0.0, out.At(0, 0))
}
