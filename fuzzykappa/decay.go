package fuzzykappa

import "math"

// DecayFn is a pure mapping from a raw distance to a similarity-like weight,
// typically in [0,1] and non-increasing. Arbitrary closures are
// admissible; ExponentialDecay and OneNeighbour are the two recognized
// presets.
type DecayFn func(d float64) float64

// ExponentialDecay returns a DecayFn computing 0.5^(d/halving): similarity
// halves every halving units of distance.
func ExponentialDecay(halving float64) DecayFn {
	return func(d float64) float64 {
		return math.Pow(0.5, d/halving)
	}
}

// OneNeighbour returns a DecayFn that is 1 below distance 0.9, value
// between 0.9 and 1.1 (the immediate-neighbour band), and 0 beyond.
func OneNeighbour(value float64) DecayFn {
	return func(d float64) float64 {
		switch {
		case d < 0.9:
			return 1.0
		case d < 1.1:
			return value
		default:
			return 0
		}
	}
}
