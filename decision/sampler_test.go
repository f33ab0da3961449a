package decision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePools(perClass int, classes ...string) map[string][]Candidate {
	pools := make(map[string][]Candidate)
	var id int64
	for _, class := range classes {
		for i := 0; i < perClass; i++ {
			id++
			pools[class] = append(pools[class], Candidate{
				Class:   class,
				DocID:   id,
				Source:  "dgsi_stj",
				Variant: class,
			})
		}
	}
	return pools
}

func TestSampleBalancedCoversEveryClass(t *testing.T) {
	pools := makePools(10, "PROCEDENTE", "IMPROCEDENTE", "PROVIDO", "NEGADA")
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		sample, err := SampleBalanced(pools, 6, rng)
		require.NoError(t, err)
		require.Len(t, sample, 6)

		seen := make(map[string]bool)
		for _, c := range sample {
			seen[c.Class] = true
		}
		for class := range pools {
			assert.True(t, seen[class], "class %s missing from sample (trial %d)", class, trial)
		}
	}
}

func TestSampleBalancedNoDuplicates(t *testing.T) {
	pools := makePools(5, "PROCEDENTE", "IMPROCEDENTE", "PROVIDO")
	rng := rand.New(rand.NewSource(7))

	sample, err := SampleBalanced(pools, 12, rng)
	require.NoError(t, err)
	require.Len(t, sample, 12)

	seen := make(map[int64]bool)
	for _, c := range sample {
		assert.False(t, seen[c.DocID], "document %d sampled twice", c.DocID)
		seen[c.DocID] = true
	}
}

func TestSampleBalancedTotalBelowClassCount(t *testing.T) {
	pools := makePools(5, "PROCEDENTE", "IMPROCEDENTE", "PROVIDO")
	rng := rand.New(rand.NewSource(1))

	_, err := SampleBalanced(pools, 2, rng)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSamplingInfeasible)
}

func TestSampleBalancedEmptyClass(t *testing.T) {
	pools := makePools(5, "PROCEDENTE", "IMPROCEDENTE")
	pools["PROVIDO"] = nil
	rng := rand.New(rand.NewSource(1))

	_, err := SampleBalanced(pools, 3, rng)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSamplingInfeasible)
	assert.Contains(t, err.Error(), "PROVIDO")
}

func TestSampleBalancedInsufficientUnique(t *testing.T) {
	pools := makePools(2, "PROCEDENTE", "IMPROCEDENTE")
	rng := rand.New(rand.NewSource(1))

	_, err := SampleBalanced(pools, 5, rng)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSamplingInfeasible)
}

func TestSampleBalancedExactFit(t *testing.T) {
	pools := makePools(1, "PROCEDENTE", "IMPROCEDENTE", "PROVIDO")
	rng := rand.New(rand.NewSource(3))

	sample, err := SampleBalanced(pools, 3, rng)
	require.NoError(t, err)
	assert.Len(t, sample, 3)
}

func TestSampleBalancedDeterministicForSeed(t *testing.T) {
	pools := makePools(10, "PROCEDENTE", "IMPROCEDENTE", "PROVIDO")

	a, err := SampleBalanced(pools, 9, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := SampleBalanced(pools, 9, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
