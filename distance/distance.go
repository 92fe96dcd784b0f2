// Package distance implements the exact two-pass Meijster distance
// transform over a raster.Raster grid, for the Euclidean (squared and
// non-squared), Manhattan and Chessboard metrics.
//
// What & Why:
//
//	For every cell, DistanceTransform computes the distance under a chosen
//	metric to the nearest cell holding a target value. Stage 1 is a
//	vertical two-pass scan producing, per column, the row-distance to the
//	nearest target cell (the g buffer). Stage 2 is
//	Meijster's O(cols) monotone-stack reduction that folds the vertical
//	distances of every column into the true 2-D distance for each cell in
//	the row, using package metric's F/Sep primitives.
//
// Complexity:
//
//	O(rows*cols) time, O(rows*cols) working memory for the Stage-1 buffer
//	plus O(cols) for the per-row Stage-2 stack.
//
// Errors:
//
//	ErrDimensionMismatch — in and out have different Rows()/Cols().
package distance

import (
	"errors"

	"github.com/jeffrey-newman/raster-tools/metric"
	"github.com/jeffrey-newman/raster-tools/raster"
)

// ErrDimensionMismatch indicates in and out do not share the same shape.
var ErrDimensionMismatch = errors.New("distance: in and out rasters must have equal dimensions")

// stFrame is a Stage-2 monotone-stack entry: s is the column whose
// contribution dominates from column t onward.
type stFrame struct {
	s, t int
}

// DistanceTransform computes, for every cell of in, the distance under
// metric m to the nearest cell equal to target, writing the result into
// out. in and out must have identical dimensions; out is fully overwritten.
//
// If in holds no target cell at all, every output is rows+cols, large
// enough to stand in for +∞.
func DistanceTransform(in raster.Raster[int], out raster.Raster[float64], target int, m metric.Metric) error {
	rows, cols := in.Rows(), in.Cols()
	if out.Rows() != rows || out.Cols() != cols {
		return ErrDimensionMismatch
	}
	inf := rows + cols

	d1 := stage1(in, target, inf)

	// After stage1, row 0 is below inf in every column holding a target.
	noTarget := true
	for c := 0; c < cols; c++ {
		if d1[c] < inf {
			noTarget = false
			break
		}
	}
	if noTarget {
		for i := 0; i < out.Len(); i++ {
			out.SetIndex(i, float64(inf))
		}
		return nil
	}

	g := make([]int, cols)
	for r := 0; r < rows; r++ {
		copy(g, d1[r*cols:(r+1)*cols])
		processLine(g, out, r, inf, m)
	}

	return nil
}

// stage1 runs Meijster's vertical two-pass scan: a forward pass counting
// distance-to-nearest-target-above, then a backward pass folding in the
// nearest target below, producing a flat row-major buffer of vertical
// distances.
func stage1(in raster.Raster[int], target, inf int) []int {
	rows, cols := in.Rows(), in.Cols()
	d1 := make([]int, rows*cols)

	for c := 0; c < cols; c++ {
		if in.At(0, c) == target {
			d1[c] = 0
		} else {
			d1[c] = inf
		}
	}
	for r := 1; r < rows; r++ {
		base := r * cols
		above := base - cols
		for c := 0; c < cols; c++ {
			if in.At(r, c) == target {
				d1[base+c] = 0
				continue
			}
			up := d1[above+c]
			if up == inf {
				d1[base+c] = inf
			} else {
				d1[base+c] = up + 1
			}
		}
	}
	for r := rows - 2; r >= 0; r-- {
		base := r * cols
		below := base + cols
		for c := 0; c < cols; c++ {
			if d1[base+c] > d1[below+c] {
				d1[base+c] = d1[below+c] + 1
			}
		}
	}

	return d1
}

// processLine performs Meijster's second scan (the monotone-stack
// reduction) over one row's vertical-distance buffer g, writing the
// resulting 2-D distances directly into row r of out.
func processLine(g []int, out raster.Raster[float64], r, inf int, m metric.Metric) {
	cols := len(g)
	st := make([]stFrame, 1, cols)
	st[0] = stFrame{s: 0, t: 0}

	for u := 1; u < cols; u++ {
		for len(st) > 0 && metric.F(st[len(st)-1].t, st[len(st)-1].s, g, m) > metric.F(st[len(st)-1].t, u, g, m) {
			st = st[:len(st)-1]
		}
		if len(st) == 0 {
			st = append(st, stFrame{s: u, t: 0})

			continue
		}
		w := 1 + metric.Sep(st[len(st)-1].s, u, g, inf, m)
		if w < cols {
			st = append(st, stFrame{s: u, t: w})
		}
	}

	for u := cols - 1; u >= 0; u-- {
		top := st[len(st)-1]
		out.Set(r, u, metric.PostProcess(metric.F(u, top.s, g, m), m))
		if u == top.t {
			st = st[:len(st)-1]
		}
	}
}
