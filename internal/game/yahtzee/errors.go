package yahtzee

import "errors"

// Errors returned by the scoring engine.
var (
	// ErrInvalidDice is returned when a die face is outside 1..6.
	ErrInvalidDice = errors.New("dice values must be between 1 and 6")
	// ErrInvalidRollSize is returned when a roll does not hold exactly five dice.
	ErrInvalidRollSize = errors.New("a roll must contain exactly 5 dice")
	// ErrUnsupportedCategory is returned for an identifier with no scoring rule.
	ErrUnsupportedCategory = errors.New("unsupported category")
	// ErrDuplicateAssignment is returned when a category is scored twice on one card.
	ErrDuplicateAssignment = errors.New("category already assigned")
	// ErrUnknownPlayer is returned for operations on a player that was never registered.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrMalformedInput is returned when kata input cannot be split into a category and dice.
	ErrMalformedInput = errors.New("input must be \"<CATEGORY> d1 d2 d3 d4 d5\"")
)
