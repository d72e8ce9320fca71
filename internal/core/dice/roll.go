// Package dice implements the percentile rolls that drive game events.
package dice

import "github.com/louisbranch/textcraft/internal/random"

// Percent is the number of faces on a percentile die.
const Percent = 100

// RollPercent rolls a d100, returning a value in [1, 100].
func RollPercent(src random.Source) int {
	return rollDie(src, Percent)
}

// Chance rolls a d100 and reports whether it landed at or under chance.
// A chance of 0 never succeeds; 100 or more always does.
func Chance(src random.Source, chance int) bool {
	return RollPercent(src) <= chance
}

// Pick rolls a d100 and returns the index of the first cumulative bucket the
// roll falls into. Weights are percentages; a roll above their sum returns
// len(weights)-1 so the last bucket absorbs any remainder.
func Pick(src random.Source, weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	return Bucket(RollPercent(src), weights)
}

// Bucket maps a d100 value onto cumulative weights without rolling.
func Bucket(roll int, weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	threshold := 0
	for i, w := range weights {
		threshold += w
		if roll <= threshold {
			return i
		}
	}
	return len(weights) - 1
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src random.Source, sides int) int {
	return src.Intn(sides) + 1
}
