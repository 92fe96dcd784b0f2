// Package rastertools is a toolkit for exact distance transforms and
// categorical map comparison on dense raster grids.
//
// It is organized into:
//
//	raster/     — generic Raster[T] grid abstraction and its Dense[T] backing store
//	metric/     — the four distance metrics (squared/non-squared Euclidean, Manhattan, Chessboard)
//	distance/   — the two-pass Meijster exact distance transform
//	matrix/     — dense float64 matrices, used for categorical similarity tables
//	fuzzykappa/ — the Fuzzy Kappa (2009) map-comparison statistic, built on distance
//	internal/rasterio/ — ESRI ASCII grid (*.asc) reading and writing
//	cmd/fuzzykappa/    — a CLI wiring the above into a "compare" command
//
// A distance transform answers, for every cell of a raster, how far it is
// from the nearest cell holding a target value, under a chosen metric:
//
//	out, err := raster.NewDense[float64](in.Rows(), in.Cols())
//	err = distance.EuclideanDistanceTransform(in, out, target)
//
// Fuzzy Kappa builds on that to compare two categorical maps cell-by-cell,
// tolerant of small positional shifts between otherwise-matching regions,
// and chance-corrected the way Cohen's Kappa is:
//
//	ok, fk, err := fuzzykappa.FuzzyKappa2009(mapA, mapB, mask, nCatsA, nCatsB,
//		similarityMatrix, fuzzykappa.ExponentialDecay(halving), comparison,
//		raster.DenseMaker[float64](), fuzzykappa.DefaultOptions())
package rastertools
