package rasterio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffrey-newman/raster-tools/internal/rasterio"
	"github.com/jeffrey-newman/raster-tools/raster"
)

func writeTempASC(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.asc")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestReadASC(t *testing.T) {
	contents := "ncols 3\n" +
		"nrows 2\n" +
		"xllcorner 0\n" +
		"yllcorner 0\n" +
		"cellsize 1\n" +
		"NODATA_value -9999\n" +
		"1 0 0\n" +
		"0 -9999 0\n"
	path := writeTempASC(t, contents)

	g, err := rasterio.ReadASC(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Header.NCols)
	assert.Equal(t, 2, g.Header.NRows)
	assert.Equal(t, 1, g.Values.At(0, 0))
	assert.Equal(t, 0, g.Mask.At(1, 1))
	assert.Equal(t, 1, g.Mask.At(0, 0))
}

func TestWriteASC_RoundTrip(t *testing.T) {
	values, err := raster.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "out.asc")
	require.NoError(t, rasterio.WriteASC(path, values, rasterio.Header{CellSize: 1}, -1))

	g, err := rasterio.ReadASC(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Header.NRows)
	assert.Equal(t, 2, g.Header.NCols)
	assert.Equal(t, 2, g.Values.At(0, 1))
}
