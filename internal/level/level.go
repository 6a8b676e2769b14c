package level

import "loadout/internal/rng"

// Bounds returns the inclusive range PMC bot levels are drawn from for a
// player level.
func Bounds(playerLevel, delta, maxLevel int) (int, int) {
	lo := min(max(1, playerLevel-delta), maxLevel)
	hi := max(min(maxLevel, playerLevel+delta), lo)
	return lo, hi
}

// Generate draws a PMC bot level uniformly around the player's level.
func Generate(src rng.Source, playerLevel, delta, maxLevel int) int {
	lo, hi := Bounds(playerLevel, delta, maxLevel)
	return rng.IntRange(src, lo, hi)
}
