package embed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	vecs := [][]float64{
		{1, 2, 3},
		{3, 4, 5},
	}
	assert.Equal(t, []float64{2, 3, 4}, Mean(vecs))
}

func TestMeanSingleVector(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, Mean([][]float64{{1, 2}}))
}

func TestMeanEmpty(t *testing.T) {
	assert.Nil(t, Mean(nil))
	assert.Nil(t, Mean([][]float64{}))
}

func TestNormalizeL2(t *testing.T) {
	vec := []float64{3, 4}
	NormalizeL2(vec)
	assert.InDelta(t, 0.6, vec[0], 1e-9)
	assert.InDelta(t, 0.8, vec[1], 1e-9)

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestNormalizeL2ZeroVector(t *testing.T) {
	vec := []float64{0, 0, 0}
	NormalizeL2(vec)
	assert.Equal(t, []float64{0, 0, 0}, vec)
}

func TestToFloat64(t *testing.T) {
	out := toFloat64([]float32{1.5, -2})
	assert.Equal(t, []float64{1.5, -2}, out)
	assert.Empty(t, toFloat64(nil))
}
