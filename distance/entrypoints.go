package distance

import (
	"github.com/jeffrey-newman/raster-tools/metric"
	"github.com/jeffrey-newman/raster-tools/raster"
)

// EuclideanDistanceTransform computes the Euclidean (non-squared) distance
// transform of in against target, writing into out.
func EuclideanDistanceTransform(in raster.Raster[int], out raster.Raster[float64], target int) error {
	return DistanceTransform(in, out, target, metric.EuclideanNonSquared)
}

// SquaredEuclideanDistanceTransform computes the squared Euclidean distance
// transform of in against target, writing into out.
func SquaredEuclideanDistanceTransform(in raster.Raster[int], out raster.Raster[float64], target int) error {
	return DistanceTransform(in, out, target, metric.EuclideanSquared)
}

// ManhattanDistanceTransform computes the Manhattan (L1) distance transform
// of in against target, writing into out.
func ManhattanDistanceTransform(in raster.Raster[int], out raster.Raster[float64], target int) error {
	return DistanceTransform(in, out, target, metric.Manhattan)
}

// ChessboardDistanceTransform computes the Chessboard (L∞) distance
// transform of in against target, writing into out.
func ChessboardDistanceTransform(in raster.Raster[int], out raster.Raster[float64], target int) error {
	return DistanceTransform(in, out, target, metric.Chessboard)
}
