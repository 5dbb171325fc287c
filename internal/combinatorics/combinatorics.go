// Package combinatorics counts the ways a handful of identical fair dice can
// land on a given total. Counts are exact: sides^dice reaches 100^10 at the
// supported ceiling, which does not fit in 64 bits, so everything is carried
// in math/big.
package combinatorics

import (
	"math/big"
)

var bigOne = big.NewInt(1)

// WaysToMakeSum returns the number of ways diceRemaining dice with faces
// 1..sidesCount can add up to targetSum. Unreachable sums, including negative
// ones, yield zero.
//
// The count is found by fixing the face of one die and recursing on the rest.
// Sub-results are memoised for the duration of the call.
func WaysToMakeSum(diceRemaining, targetSum, sidesCount int) *big.Int {
	c := &counter{sides: sidesCount, memo: make(map[state]*big.Int)}
	return new(big.Int).Set(c.ways(diceRemaining, targetSum))
}

type state struct {
	dice   int
	target int
}

type counter struct {
	sides int
	memo  map[state]*big.Int
}

func (c *counter) ways(diceRemaining, targetSum int) *big.Int {
	if targetSum < diceRemaining || targetSum > diceRemaining*c.sides {
		return new(big.Int)
	}
	if diceRemaining == 0 {
		// the pruning above already forces targetSum == 0 here
		return new(big.Int).Set(bigOne)
	}

	key := state{dice: diceRemaining, target: targetSum}
	if cached, ok := c.memo[key]; ok {
		return cached
	}

	total := new(big.Int)
	for face := 1; face <= c.sides; face++ {
		total.Add(total, c.ways(diceRemaining-1, targetSum-face))
	}
	c.memo[key] = total
	return total
}

// TotalOutcomes returns sidesCount^diceCount
func TotalOutcomes(diceCount, sidesCount int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(sidesCount)), big.NewInt(int64(diceCount)), nil)
}
