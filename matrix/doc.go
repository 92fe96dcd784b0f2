// Package matrix provides a small, bounds-checked dense float64 matrix.
//
// What & Why:
//
//	Dense backs the categorical similarity matrix used by package fuzzykappa
//	(m[a][b], the closeness between category a of one legend and category b
//	of another) and any other rectangular table of doubles a caller needs.
//	It exists so that shape mismatches surface as errors at the boundary of
//	a call instead of as an out-of-range panic deep inside a reduction loop.
//
// Complexity:
//
//	NewDense: O(r*c) zero-init. At/Set: O(1). Clone: O(r*c).
package matrix
