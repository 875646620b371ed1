package rover

import (
	"context"

	"dice-katas/internal/game"
)

// Kata adapts Run to the game.Kata interface.
type Kata struct {
	strict bool
}

// Config holds configuration for the rover kata.
type Config struct {
	Strict bool
}

// NewKata creates the rover kata. A nil config means strict mode.
func NewKata(cfg *Config) *Kata {
	strict := true
	if cfg != nil {
		strict = cfg.Strict
	}
	return &Kata{strict: strict}
}

var _ game.Kata = (*Kata)(nil)

func (k *Kata) Name() string {
	return "Mars Rover"
}

func (k *Kata) Command() string {
	return "rover"
}

func (k *Kata) Description() string {
	return "Drive a rover across a plateau: \"W H\\nX Y HEADING\\nCOMMANDS\", e.g. \"5 5\\n1 2 N\\nLMLMLMLMM\""
}

// Play runs the instructions and reports the final position.
func (k *Kata) Play(ctx context.Context, input string) (*game.Result, error) {
	in, err := Parse(input)
	if err != nil {
		return nil, err
	}

	r := New(in.Grid, in.Start, k.strict)
	if err := r.Execute(in.Commands); err != nil {
		return nil, err
	}

	pos := r.Position()
	return &game.Result{
		Output: pos.String(),
		Details: map[string]any{
			"x":        pos.X,
			"y":        pos.Y,
			"heading":  pos.Heading.String(),
			"commands": len(in.Commands),
		},
	}, nil
}
