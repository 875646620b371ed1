package yahtzee

import (
	"context"
	"fmt"
	"strings"

	"dice-katas/internal/game"
)

// Kata scores a single category against a single roll.
type Kata struct {
	categories *Registry
}

// NewKata creates the Yahtzee kata. A nil registry means the standard
// fourteen categories.
func NewKata(categories *Registry) *Kata {
	if categories == nil {
		categories = NewStandardRegistry()
	}
	return &Kata{categories: categories}
}

var _ game.Kata = (*Kata)(nil)

// Name returns the kata's display name.
func (k *Kata) Name() string {
	return "Yahtzee"
}

// Command returns the command that selects this kata.
func (k *Kata) Command() string {
	return "yahtzee"
}

// Description returns a brief description of the kata.
func (k *Kata) Description() string {
	return "Score five dice in one category: \"<CATEGORY> d1 d2 d3 d4 d5\", e.g. \"FULL_HOUSE 3 3 5 5 5\""
}

// Play parses "<CATEGORY> d1 d2 d3 d4 d5" and returns the score.
func (k *Kata) Play(ctx context.Context, input string) (*game.Result, error) {
	fields := strings.Fields(input)
	if len(fields) != RollSize+1 {
		return nil, fmt.Errorf("%w: got %q", ErrMalformedInput, input)
	}

	category, err := k.categories.CreateByName(fields[0])
	if err != nil {
		return nil, err
	}

	roll, err := ParseRoll(fields[1:]...)
	if err != nil {
		return nil, err
	}

	score := category.ScoreFor(roll)

	return &game.Result{
		Output: score.String(),
		Details: map[string]any{
			"category": category.ID().String(),
			"dice":     roll.Faces(),
			"score":    score.Int(),
		},
	}, nil
}
