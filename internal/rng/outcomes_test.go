package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fortunabot/fortuna/internal/rng/mocks"
)

func TestCrashPointNeverBelowFloor(t *testing.T) {
	src := New(&Config{Seed: 42})

	for i := 0; i < 100000; i++ {
		p := CrashPoint(src)
		require.GreaterOrEqual(t, p, 1.00)
	}
}

func TestCrashPointZeroDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Float64().Return(0.0)

	assert.Equal(t, 100.00, CrashPoint(src))
}

func TestCrashPointKnownDraws(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	// r = 0.5 -> 0.99/0.5 = 1.98
	src.EXPECT().Float64().Return(0.5)
	assert.Equal(t, 1.98, CrashPoint(src))

	// small r lands below 1.00 and gets clamped
	src.EXPECT().Float64().Return(0.001)
	assert.Equal(t, 1.00, CrashPoint(src))
}

func TestWeightedIndexDistribution(t *testing.T) {
	src := New(&Config{Seed: 7})
	weights := []int{60, 30, 9, 1}

	const trials = 100000
	counts := make([]int, len(weights))
	for i := 0; i < trials; i++ {
		idx := WeightedIndex(src, weights)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(weights))
		counts[idx]++
	}

	// observed frequency within 1 percentage point of the weight
	for i, w := range weights {
		expected := float64(w) / 100
		observed := float64(counts[i]) / trials
		assert.InDelta(t, expected, observed, 0.01, "tier %d", i)
	}
}

func TestWeightedIndexBoundaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	weights := []int{60, 30, 9, 1}

	src.EXPECT().Intn(100).Return(0)
	assert.Equal(t, 0, WeightedIndex(src, weights))

	src.EXPECT().Intn(100).Return(59)
	assert.Equal(t, 0, WeightedIndex(src, weights))

	src.EXPECT().Intn(100).Return(60)
	assert.Equal(t, 1, WeightedIndex(src, weights))

	src.EXPECT().Intn(100).Return(99)
	assert.Equal(t, 3, WeightedIndex(src, weights))
}

func TestSafeTilesShape(t *testing.T) {
	src := New(&Config{Seed: 99})

	tiles := SafeTiles(src, 10, 3, 2)
	require.Len(t, tiles, 10)

	for level, safe := range tiles {
		require.Len(t, safe, 2, "level %d", level)
		assert.NotEqual(t, safe[0], safe[1], "level %d drew the same lane twice", level)
		for _, lane := range safe {
			assert.GreaterOrEqual(t, lane, 0)
			assert.Less(t, lane, 3)
		}
	}
}

func TestSampleIndicesWithoutReplacement(t *testing.T) {
	src := New(&Config{Seed: 3})

	for i := 0; i < 1000; i++ {
		picked := SampleIndices(src, 5, 5)
		require.Len(t, picked, 5)
		seen := make(map[int]bool)
		for _, v := range picked {
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2349))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, 0.0, Round2(0.001))
	assert.Equal(t, 250.0, Round2(1000.0/4))
}
