package rng

import "math"

// Round2 rounds to 2 decimal places, the precision every balance and payout
// is stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CrashPoint draws the multiplier a crash round will bust at. The
// distribution heavily favors low multipliers while keeping a long tail.
func CrashPoint(src Source) float64 {
	r := src.Float64()
	if r == 0 {
		// division by zero guard; caps the tail
		return 100.00
	}
	return math.Max(1.00, Round2(0.99/(1-r)))
}

// WeightedIndex selects an index with probability proportional to its weight.
// Weights must be non-negative and sum to a positive total.
func WeightedIndex(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	roll := src.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// SampleIndices draws k distinct indices from [0, n) without replacement.
func SampleIndices(src Source, n, k int) []int {
	if k > n {
		k = n
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	picked := make([]int, 0, k)
	for i := 0; i < k; i++ {
		j := src.Intn(len(pool))
		picked = append(picked, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return picked
}

// SafeTiles generates the safe-lane table for a tower board: for each of
// levels rows, exactly safePerLevel of lanes lanes survive a step.
func SafeTiles(src Source, levels, lanes, safePerLevel int) [][]int {
	tiles := make([][]int, levels)
	for i := range tiles {
		tiles[i] = SampleIndices(src, lanes, safePerLevel)
	}
	return tiles
}
