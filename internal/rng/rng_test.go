package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type option struct {
	name   string
	weight int
}

func optionWeight(o option) int { return o.weight }

func TestWeightedEqualWeights(t *testing.T) {
	src := New(42)
	options := []option{{"a", 1}, {"b", 1}, {"c", 1}, {"d", 1}}

	const draws = 10000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		picked, ok := Weighted(src, options, optionWeight)
		require.True(t, ok)
		counts[picked.name]++
	}

	for _, o := range options {
		freq := float64(counts[o.name]) / draws
		assert.InDelta(t, 0.25, freq, 0.03, "option %s frequency %v", o.name, freq)
	}
}

func TestWeightedNeverPicksZeroWeight(t *testing.T) {
	src := New(7)
	options := []option{{"zero", 0}, {"one", 1}, {"also-zero", 0}, {"three", 3}}

	for i := 0; i < 5000; i++ {
		picked, ok := Weighted(src, options, optionWeight)
		require.True(t, ok)
		assert.NotEqual(t, 0, picked.weight)
	}
}

func TestWeightedProportions(t *testing.T) {
	src := New(99)
	options := []option{{"rare", 1}, {"common", 9}}

	const draws = 10000
	rare := 0
	for i := 0; i < draws; i++ {
		picked, _ := Weighted(src, options, optionWeight)
		if picked.name == "rare" {
			rare++
		}
	}
	assert.InDelta(t, 0.1, float64(rare)/draws, 0.02)
}

func TestWeightedEmpty(t *testing.T) {
	_, ok := Weighted(New(1), []option{}, optionWeight)
	assert.False(t, ok)

	_, ok = Weighted(New(1), []option{{"zero", 0}}, optionWeight)
	assert.False(t, ok)
}

func TestSeededSourcesAreReproducible(t *testing.T) {
	a, b := New(1234), New(1234)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestPick(t *testing.T) {
	_, ok := Pick(New(1), []string{})
	assert.False(t, ok)

	only, ok := Pick(New(1), []string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", only)

	seen := make(map[string]bool)
	src := New(5)
	for i := 0; i < 200; i++ {
		v, _ := Pick(src, []string{"x", "y", "z"})
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestIntRangeInclusive(t *testing.T) {
	src := New(3)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := IntRange(src, 1, 4)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 7, IntRange(src, 7, 7))
}

func TestChance(t *testing.T) {
	src := New(11)
	assert.False(t, Chance(src, 0))
	for i := 0; i < 100; i++ {
		assert.True(t, Chance(src, 100))
	}
}
