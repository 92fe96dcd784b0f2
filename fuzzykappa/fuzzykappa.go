// Package fuzzykappa implements the Fuzzy Kappa (2009) map-comparison
// statistic: a chance-corrected agreement measure between two categorical
// maps, weighted by fuzzy (distance-decayed, category-weighted) per-cell
// similarity. It is built on top of package distance.
//
// What & Why:
//
//	FuzzyKappa2009 runs one Euclidean distance transform per category of
//	each map, decays the raw distances through a caller-supplied DecayFn,
//	folds them through a categorical similarity matrix into a per-cell
//	best-similarity vector for each category of the other map, then reduces
//	that into a scalar via a chance-correction term built from
//	ExpectedMinimum over per-category-pair empirical similarity
//	distributions.
//
// Errors:
//
//	ErrDimensionMismatch  — mapA/mapB/mask/comparison shapes disagree.
//	ErrMatrixShape        — m's shape does not match nCatsA x nCatsB.
//	ErrCategoryOutOfRange — a mapA/mapB cell holds a category outside
//	                        [0,nCatsA)/[0,nCatsB).
package fuzzykappa

import (
	"errors"
	"math"

	"github.com/jeffrey-newman/raster-tools/distance"
	"github.com/jeffrey-newman/raster-tools/matrix"
	"github.com/jeffrey-newman/raster-tools/raster"
)

var (
	// ErrDimensionMismatch indicates mapA, mapB, mask and comparison do not
	// all share the same shape.
	ErrDimensionMismatch = errors.New("fuzzykappa: mapA, mapB, mask and comparison must have equal dimensions")
	// ErrMatrixShape indicates the similarity matrix does not have shape
	// nCatsA x nCatsB.
	ErrMatrixShape = errors.New("fuzzykappa: similarity matrix shape does not match nCatsA x nCatsB")
	// ErrCategoryOutOfRange indicates a mapA/mapB cell holds a category
	// index outside its declared legend.
	ErrCategoryOutOfRange = errors.New("fuzzykappa: category index out of range")
)

// Options tunes FuzzyKappa2009's behavior beyond its core
// algorithm fixes.
type Options struct {
	// LegacyCategoryCounting reproduces a category-counting statement
	// found in early Fuzzy Kappa (2009) implementations, verbatim:
	//
	//	++catCountsA[catA]; ++catCountsB[catA];
	//
	// (almost certainly a transcription bug — the evident intent being
	// ++catCountsB[catB]). Set this to true only to reproduce published
	// results computed against that accounting bit-for-bit; leave false
	// (the default) for the corrected accounting. See DESIGN.md.
	LegacyCategoryCounting bool
}

// DefaultOptions returns the corrected, non-legacy Options.
func DefaultOptions() Options {
	return Options{}
}

// FuzzyKappa2009 compares mapA against mapB over the cells where mask is
// non-zero, using categorical similarity matrix m and distance decay
// function decay. It writes the per-cell similarity into comparison
// (-1 for masked-out cells) and returns (ok, fuzzykappa).
//
// ok is false in the two degenerate cases:
// no valid cells (fuzzykappa=0) and a perfect match (fuzzykappa=1), where
// either every valid cell has similarity 1 or the expected similarity is 1.
// It is true otherwise. A non-nil error indicates a contract violation
// (dimension mismatch, matrix shape mismatch, or an out-of-range category)
// and is always accompanied by (false, 0).
func FuzzyKappa2009(
	mapA, mapB, mask raster.Raster[int],
	nCatsA, nCatsB int,
	m *matrix.Dense,
	decay DecayFn,
	comparison raster.Raster[float64],
	maker raster.Maker[float64],
	opts Options,
) (ok bool, fuzzykappa float64, err error) {
	rows, cols := mapA.Rows(), mapA.Cols()
	if mapB.Rows() != rows || mapB.Cols() != cols ||
		mask.Rows() != rows || mask.Cols() != cols ||
		comparison.Rows() != rows || comparison.Cols() != cols {
		return false, 0, ErrDimensionMismatch
	}
	if m.Rows() != nCatsA || m.Cols() != nCatsB {
		return false, 0, ErrMatrixShape
	}

	distA, err := decayedDistances(mapA, nCatsA, decay, maker)
	if err != nil {
		return false, 0, err
	}
	distB, err := decayedDistances(mapB, nCatsB, decay, maker)
	if err != nil {
		return false, 0, err
	}

	simA, simB := bestSimilarities(mapA, nCatsA, nCatsB, m, distA, distB, maker)

	mean, count, catCountsA, catCountsB, distributionA, distributionB, err := aggregate(
		mapA, mapB, mask, comparison, nCatsA, nCatsB, simA, simB, opts,
	)
	if err != nil {
		return false, 0, err
	}
	if count == 0 {
		return false, 0, nil
	}
	mean /= float64(count)
	if mean == 1 {
		return false, 1, nil
	}

	expected := expectedSimilarity(nCatsA, nCatsB, count, catCountsA, catCountsB, distributionA, distributionB)

	if expected == 1 {
		return false, 1, nil
	}

	return true, (mean - expected) / (1 - expected), nil
}

// decayedDistances computes, for each category in [0,nCats), the Euclidean
// distance transform of m against that category and applies decay in
// place.
func decayedDistances(m raster.Raster[int], nCats int, decay DecayFn, maker raster.Maker[float64]) ([]raster.Raster[float64], error) {
	out := make([]raster.Raster[float64], nCats)
	for cat := 0; cat < nCats; cat++ {
		d := maker(m)
		if err := distance.EuclideanDistanceTransform(m, d, cat); err != nil {
			return nil, err
		}
		for i := 0; i < d.Len(); i++ {
			d.SetIndex(i, decay(d.AtIndex(i)))
		}
		out[cat] = d
	}

	return out, nil
}

// bestSimilarities computes, per cell, simA[b] (map A's best similarity to
// category b of map B) and simB[a] (map B's best similarity to category a
// of map A).
func bestSimilarities(
	model raster.Dims, nCatsA, nCatsB int, m *matrix.Dense,
	distA, distB []raster.Raster[float64], maker raster.Maker[float64],
) (simA, simB []raster.Raster[float64]) {
	simA = make([]raster.Raster[float64], nCatsB)
	for b := range simA {
		simA[b] = maker(model)
	}
	simB = make([]raster.Raster[float64], nCatsA)
	for a := range simB {
		simB[a] = maker(model)
	}

	n := model.Rows() * model.Cols()
	for p := 0; p < n; p++ {
		for a := 0; a < nCatsA; a++ {
			da := distA[a].AtIndex(p)
			for b := 0; b < nCatsB; b++ {
				mab, _ := m.At(a, b)
				db := distB[b].AtIndex(p)

				if v := mab * da; v > simA[b].AtIndex(p) {
					simA[b].SetIndex(p, v)
				}
				if v := mab * db; v > simB[a].AtIndex(p) {
					simB[a].SetIndex(p, v)
				}
			}
		}
	}

	return simA, simB
}

// aggregate writes comparison, accumulates
// mean similarity and per-category cell counts, and fills the per-category
// pair distributions ExpectedMinimum needs.
func aggregate(
	mapA, mapB, mask raster.Raster[int],
	comparison raster.Raster[float64],
	nCatsA, nCatsB int,
	simA, simB []raster.Raster[float64],
	opts Options,
) (mean float64, count int, catCountsA, catCountsB []int, distributionA, distributionB [][]*Distribution, err error) {
	catCountsA = make([]int, nCatsA)
	catCountsB = make([]int, nCatsB)

	distributionA = make([][]*Distribution, nCatsA)
	for a := range distributionA {
		distributionA[a] = make([]*Distribution, nCatsB)
		for b := range distributionA[a] {
			distributionA[a][b] = NewDistribution()
		}
	}
	distributionB = make([][]*Distribution, nCatsB)
	for b := range distributionB {
		distributionB[b] = make([]*Distribution, nCatsA)
		for a := range distributionB[b] {
			distributionB[b][a] = NewDistribution()
		}
	}

	n := mapA.Rows() * mapA.Cols()
	for p := 0; p < n; p++ {
		if mask.AtIndex(p) == 0 {
			comparison.SetIndex(p, -1)
			continue
		}

		catA := mapA.AtIndex(p)
		catB := mapB.AtIndex(p)
		if catA < 0 || catA >= nCatsA || catB < 0 || catB >= nCatsB {
			return 0, 0, nil, nil, nil, nil, ErrCategoryOutOfRange
		}

		catCountsA[catA]++
		if opts.LegacyCategoryCounting {
			catCountsB[catA]++
		} else {
			catCountsB[catB]++
		}

		sim := math.Min(simA[catB].AtIndex(p), simB[catA].AtIndex(p))
		comparison.SetIndex(p, sim)
		mean += sim
		count++

		for b := 0; b < nCatsB; b++ {
			distributionA[catA][b].Insert(simA[b].AtIndex(p))
		}
		for a := 0; a < nCatsA; a++ {
			distributionB[catB][a].Insert(simB[a].AtIndex(p))
		}
	}

	return mean, count, catCountsA, catCountsB, distributionA, distributionB, nil
}

// expectedSimilarity computes the chance-corrected
// baseline against which mean similarity is measured.
func expectedSimilarity(
	nCatsA, nCatsB, count int,
	catCountsA, catCountsB []int,
	distributionA, distributionB [][]*Distribution,
) float64 {
	var expected float64
	total2 := float64(count) * float64(count)

	for a := 0; a < nCatsA; a++ {
		if catCountsA[a] == 0 {
			continue
		}
		for b := 0; b < nCatsB; b++ {
			if catCountsB[b] == 0 {
				continue
			}
			pCats := float64(catCountsA[a]) * float64(catCountsB[b]) / total2
			eCats := ExpectedMinimum(distributionA[a][b], distributionB[b][a], catCountsA[a], catCountsB[b])
			expected += pCats * eCats
		}
	}

	return expected
}
