package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffrey-newman/raster-tools/metric"
)

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "euclidean-squared", metric.EuclideanSquared.String())
	assert.Equal(t, "euclidean", metric.EuclideanNonSquared.String())
	assert.Equal(t, "manhattan", metric.Manhattan.String())
	assert.Equal(t, "chessboard", metric.Chessboard.String())
}

func TestF_Manhattan(t *testing.T) {
	g := []int{0, 3, 5}
	// |x-i| + g[i] = |4-1| + 3 = 6
	assert.Equal(t, 3+3, metric.F(4, 1, g, metric.Manhattan))
}

func TestF_Chessboard(t *testing.T) {
	g := []int{0, 3, 5}
	assert.Equal(t, 5, metric.F(1, 2, g, metric.Chessboard))
}

func TestF_Euclidean(t *testing.T) {
	g := []int{0, 3, 5}
	// (x-i)^2 + g[i]^2 = (4-1)^2 + 3^2 = 9+9 = 18
	assert.Equal(t, 18, metric.F(4, 1, g, metric.EuclideanSquared))
	assert.Equal(t, 18, metric.F(4, 1, g, metric.EuclideanNonSquared))
}

func TestSep_ManhattanInfinities(t *testing.T) {
	g := []int{0, 10}
	const inf = 100
	assert.Equal(t, inf, metric.Sep(0, 1, g, inf, metric.Manhattan))

	g2 := []int{10, 0}
	assert.Equal(t, -inf, metric.Sep(0, 1, g2, inf, metric.Manhattan))
}

func TestPostProcess(t *testing.T) {
	assert.Equal(t, 4.0, metric.PostProcess(4, metric.EuclideanSquared))
	assert.Equal(t, 2.0, metric.PostProcess(4, metric.EuclideanNonSquared))
	assert.True(t, math.Abs(metric.PostProcess(5, metric.EuclideanNonSquared)-math.Sqrt(5)) < 1e-9)
}
