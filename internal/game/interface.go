// Package game defines the Kata interface and the registry the command
// line dispatches through. Each kata lives in its own subpackage.
package game

import "context"

// Result is the outcome of playing a kata once.
type Result struct {
	Output  string         `json:"output"`  // Text printed to the user
	Details map[string]any `json:"details"` // Structured fields for machine-readable output
}

// Kata is a self-contained exercise that turns a text input into a result.
// Adding a kata only requires implementing this interface and registering it.
type Kata interface {
	// Name returns the display name (e.g., "Yahtzee", "Mars Rover").
	Name() string

	// Command returns the command that selects this kata (e.g., "yahtzee").
	Command() string

	// Description returns a one-line summary and the expected input format.
	Description() string

	// Play parses input and evaluates it. Invalid input is reported as an
	// error; the kata holds no state between calls.
	Play(ctx context.Context, input string) (*Result, error)
}
