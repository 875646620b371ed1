// Package yahtzee implements the Yahtzee scoring engine: dice, rolls,
// scoring categories, per-player score cards and the game that owns them.
package yahtzee

import "fmt"

const (
	// MinFace is the lowest face on a die.
	MinFace = 1
	// MaxFace is the highest face on a die.
	MaxFace = 6
)

// DiceValue is a single die face. The zero value is not a valid die;
// use NewDiceValue.
type DiceValue struct {
	face int
}

// NewDiceValue validates face and wraps it.
func NewDiceValue(face int) (DiceValue, error) {
	if face < MinFace || face > MaxFace {
		return DiceValue{}, fmt.Errorf("%w: got %d", ErrInvalidDice, face)
	}
	return DiceValue{face: face}, nil
}

// Face returns the face value.
func (d DiceValue) Face() int {
	return d.face
}

// Is reports whether the die shows face.
func (d DiceValue) Is(face int) bool {
	return d.face == face
}

// Times returns the face multiplied by n.
func (d DiceValue) Times(n int) int {
	return d.face * n
}
