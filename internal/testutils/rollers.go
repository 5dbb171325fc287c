package testutils

import (
	"fmt"
)

// CycleRoller returns 1, 2, ..., size, 1, 2, ... regardless of randomness.
// A full cycle lands on every face exactly once, which makes observed counts
// predictable.
type CycleRoller struct {
	next  int
	Calls int
}

// Roll returns the next face in the cycle
func (r *CycleRoller) Roll(size int) (int, error) {
	r.Calls++
	face := r.next%size + 1
	r.next++
	return face, nil
}

// RollN rolls count dice through Roll
func (r *CycleRoller) RollN(count, size int) ([]int, error) {
	faces := make([]int, count)
	for i := range faces {
		faces[i], _ = r.Roll(size)
	}
	return faces, nil
}

// FixedRoller always returns Face, even when it is not a legal face
type FixedRoller struct {
	Face int
}

// Roll returns the fixed face
func (r *FixedRoller) Roll(_ int) (int, error) { return r.Face, nil }

// RollN returns count copies of the fixed face
func (r *FixedRoller) RollN(count, _ int) ([]int, error) {
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.Face
	}
	return faces, nil
}

// FailingRoller fails after AllowedRolls successful rolls of face 1
type FailingRoller struct {
	AllowedRolls int
	rolls        int
}

// Roll returns 1 until the allowance is used up
func (r *FailingRoller) Roll(_ int) (int, error) {
	if r.rolls >= r.AllowedRolls {
		return 0, fmt.Errorf("entropy source exhausted after %d rolls", r.rolls)
	}
	r.rolls++
	return 1, nil
}

// RollN rolls count dice through Roll
func (r *FailingRoller) RollN(count, size int) ([]int, error) {
	faces := make([]int, count)
	for i := range faces {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return faces, nil
}
