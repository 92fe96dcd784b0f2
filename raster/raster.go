// Package raster defines the generic 2-D grid abstraction consumed by
// packages metric, distance and fuzzykappa, plus the one concrete
// implementation (Dense) they are exercised against.
//
// What & Why:
//
//	distance.DistanceTransform and fuzzykappa.FuzzyKappa2009 never allocate
//	or read a specific storage layout directly; they only see the Raster[T]
//	capability described below (row-major forward iteration, random
//	access by linear index, Rows()/Cols()). This keeps the algorithmic core
//	independent of whatever raster I/O layer a caller plugs in — the CLI in
//	cmd/fuzzykappa plugs in internal/rasterio's ESRI ASCII grid reader,
//	tests plug in Dense directly.
//
// Complexity:
//
//	All Dense accessors are O(1); NewDense is O(rows*cols).
package raster

import "errors"

// ErrInvalidDimensions indicates that requested raster dimensions are non-positive.
var ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

// Dims reports the shape of a raster or raster-like model, without
// committing to any particular element type. RasterMaker (Maker) uses it
// to size a fresh working raster from an existing one.
type Dims interface {
	Rows() int
	Cols() int
}

// Raster is the capability the algorithmic core requires of any 2-D grid:
// dimensions, row/column addressing, and random access by row-major linear
// index (used by the per-cell loops in package fuzzykappa).
// Implementations must keep iteration stable under mutation of the grid.
type Raster[T any] interface {
	Dims

	// At returns the element at (row, col).
	At(row, col int) T
	// Set assigns v at (row, col).
	Set(row, col int, v T)
	// AtIndex returns the element at row-major linear index i.
	AtIndex(i int) T
	// SetIndex assigns v at row-major linear index i.
	SetIndex(i int, v T)
	// Len returns Rows()*Cols().
	Len() int
}

// Maker allocates a working Raster[T] with the same dimensions as model.
// It mirrors the create<T>(model) -> Raster<T> factory pattern.
type Maker[T any] func(model Dims) Raster[T]

// DenseMaker returns a Maker[T] that allocates zero-initialized Dense[T]
// rasters. It is the maker used by the CLI and by tests that do not need a
// custom backing store.
func DenseMaker[T any]() Maker[T] {
	return func(model Dims) Raster[T] {
		d, err := NewDense[T](model.Rows(), model.Cols())
		if err != nil {
			// model is itself a valid raster, so its dimensions are always
			// positive; NewDense cannot fail here.
			panic(err)
		}

		return d
	}
}
