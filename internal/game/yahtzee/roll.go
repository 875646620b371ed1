package yahtzee

import (
	"fmt"
	"strconv"
)

// RollSize is the number of dice in every roll.
const RollSize = 5

// Roll is an immutable set of five dice. Dice order never affects scoring.
type Roll struct {
	dice [RollSize]DiceValue
}

// FaceGroup is the dice of one face within a roll.
type FaceGroup struct {
	Face  int
	Count int
}

// NewRoll builds a roll from exactly five faces.
func NewRoll(faces ...int) (Roll, error) {
	if len(faces) != RollSize {
		return Roll{}, fmt.Errorf("%w: got %d", ErrInvalidRollSize, len(faces))
	}

	var r Roll
	for i, f := range faces {
		d, err := NewDiceValue(f)
		if err != nil {
			return Roll{}, err
		}
		r.dice[i] = d
	}
	return r, nil
}

// ParseRoll builds a roll from textual faces such as command line arguments.
func ParseRoll(fields ...string) (Roll, error) {
	faces := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Roll{}, fmt.Errorf("%w: %q is not a number", ErrInvalidDice, f)
		}
		faces = append(faces, n)
	}
	return NewRoll(faces...)
}

// Valid reports whether r was built by NewRoll. The zero Roll holds five
// dice showing 0 and is not valid.
func (r Roll) Valid() bool {
	return r.dice[0].Face() != 0
}

// Faces returns the dice faces in the order they were given.
func (r Roll) Faces() []int {
	faces := make([]int, RollSize)
	for i, d := range r.dice {
		faces[i] = d.Face()
	}
	return faces
}

// SumMatching returns the sum of all dice showing face.
func (r Roll) SumMatching(face int) int {
	sum := 0
	for _, d := range r.dice {
		if d.Is(face) {
			sum += d.Face()
		}
	}
	return sum
}

// MatchesExactSet reports whether the distinct faces in the roll are
// exactly the distinct faces in expected. Multiplicity is ignored on both
// sides, so with five dice a match against five distinct faces implies
// every die is different.
func (r Roll) MatchesExactSet(expected ...int) bool {
	var want [MaxFace + 1]bool
	for _, f := range expected {
		if f < MinFace || f > MaxFace {
			return false
		}
		want[f] = true
	}

	counts := r.counts()
	for face := MinFace; face <= MaxFace; face++ {
		if want[face] != (counts[face] > 0) {
			return false
		}
	}
	return true
}

// GroupsWithSizeAtLeast returns the faces that appear at least n times,
// highest face first.
func (r Roll) GroupsWithSizeAtLeast(n int) []int {
	counts := r.counts()
	var faces []int
	for face := MaxFace; face >= MinFace; face-- {
		if counts[face] > 0 && counts[face] >= n {
			faces = append(faces, face)
		}
	}
	return faces
}

// Sum returns the total of all five dice.
func (r Roll) Sum() int {
	sum := 0
	for _, d := range r.dice {
		sum += d.Face()
	}
	return sum
}

// AllSame reports whether every die shows the same face.
func (r Roll) AllSame() bool {
	for _, d := range r.dice[1:] {
		if d != r.dice[0] {
			return false
		}
	}
	return true
}

// GroupedByFace partitions the dice by face, lowest face first. Faces that
// do not appear are omitted.
func (r Roll) GroupedByFace() []FaceGroup {
	counts := r.counts()
	groups := make([]FaceGroup, 0, RollSize)
	for face := MinFace; face <= MaxFace; face++ {
		if counts[face] > 0 {
			groups = append(groups, FaceGroup{Face: face, Count: counts[face]})
		}
	}
	return groups
}

func (r Roll) String() string {
	f := r.Faces()
	return fmt.Sprintf("[%d %d %d %d %d]", f[0], f[1], f[2], f[3], f[4])
}

// counts is indexed by face; index 0 is unused.
func (r Roll) counts() [MaxFace + 1]int {
	var c [MaxFace + 1]int
	for _, d := range r.dice {
		c[d.Face()]++
	}
	return c
}
