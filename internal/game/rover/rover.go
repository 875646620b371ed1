// Package rover implements the Mars Rover kata: a rover on a rectangular
// plateau follows a string of turn and move commands.
//
// Input is three lines:
//
//	5 5          plateau upper-right corner (lower-left is 0 0)
//	1 2 N        start x, start y, heading
//	LMLMLMLMM    commands
//
// and the result is the final position, e.g. "1 3 N".
package rover

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidInstructions = errors.New("instructions must have a grid line, a position line and a command line")
	ErrInvalidGrid         = errors.New("grid must be two non-negative integers")
	ErrInvalidPosition     = errors.New("position must be \"<x> <y> <heading>\" inside the grid")
	ErrInvalidHeading      = errors.New("heading must be one of N, E, S, W")
	ErrInvalidCommand      = errors.New("commands must be L, R or M")
	ErrOffPlateau          = errors.New("move would leave the plateau")
)

// Heading is a compass direction.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headingChars = [...]byte{North: 'N', East: 'E', South: 'S', West: 'W'}

func (h Heading) String() string {
	if h < 0 || int(h) >= len(headingChars) {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return string(headingChars[h])
}

// ParseHeading parses a single N/E/S/W token.
func ParseHeading(s string) (Heading, error) {
	if len(s) == 1 {
		for h, c := range headingChars {
			if s[0] == c {
				return Heading(h), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// Left returns the heading after a 90 degree counter-clockwise turn.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// Right returns the heading after a 90 degree clockwise turn.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// delta is the unit step for one move in heading h.
func (h Heading) delta() (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

// Grid is the plateau's upper-right corner.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether (x, y) lies on the plateau.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x <= g.Width && y <= g.Height
}

// Position is a rover location and heading.
type Position struct {
	X       int
	Y       int
	Heading Heading
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d %s", p.X, p.Y, p.Heading)
}

// Command is one of L, R, M.
type Command byte

const (
	TurnLeft  Command = 'L'
	TurnRight Command = 'R'
	Move      Command = 'M'
)

// Instructions is the parsed form of the three-line input.
type Instructions struct {
	Grid     Grid
	Start    Position
	Commands []Command
}

// Parse splits input into grid, start position and commands. The command
// line may be empty or missing.
func Parse(input string) (*Instructions, error) {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(input), "\r\n", "\n"), "\n")
	if len(lines) < 2 || len(lines) > 3 {
		return nil, fmt.Errorf("%w: got %d lines", ErrInvalidInstructions, len(lines))
	}

	grid, err := parseGrid(lines[0])
	if err != nil {
		return nil, err
	}

	start, err := parsePosition(lines[1], grid)
	if err != nil {
		return nil, err
	}

	var commands []Command
	if len(lines) == 3 {
		commands, err = parseCommands(lines[2])
		if err != nil {
			return nil, err
		}
	}

	return &Instructions{Grid: grid, Start: start, Commands: commands}, nil
}

func parseGrid(line string) (Grid, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Grid{}, fmt.Errorf("%w: %q", ErrInvalidGrid, line)
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil || w < 0 || h < 0 {
		return Grid{}, fmt.Errorf("%w: %q", ErrInvalidGrid, line)
	}
	return Grid{Width: w, Height: h}, nil
}

func parsePosition(line string, grid Grid) (Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, line)
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil || !grid.Contains(x, y) {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, line)
	}
	h, err := ParseHeading(fields[2])
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y, Heading: h}, nil
}

func parseCommands(line string) ([]Command, error) {
	line = strings.TrimSpace(line)
	commands := make([]Command, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := Command(line[i])
		switch c {
		case TurnLeft, TurnRight, Move:
			commands = append(commands, c)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCommand, line[i], i)
		}
	}
	return commands, nil
}

// Rover moves across a plateau.
type Rover struct {
	grid   Grid
	pos    Position
	strict bool
}

// New places a rover at start. In strict mode a move off the plateau is an
// error; otherwise the rover ignores it and stays where it is.
func New(grid Grid, start Position, strict bool) *Rover {
	return &Rover{grid: grid, pos: start, strict: strict}
}

// Position returns the rover's current position.
func (r *Rover) Position() Position {
	return r.pos
}

// Execute applies commands in order. On error the rover keeps the
// position it had before the failing command.
func (r *Rover) Execute(commands []Command) error {
	for i, c := range commands {
		switch c {
		case TurnLeft:
			r.pos.Heading = r.pos.Heading.Left()
		case TurnRight:
			r.pos.Heading = r.pos.Heading.Right()
		case Move:
			dx, dy := r.pos.Heading.delta()
			x, y := r.pos.X+dx, r.pos.Y+dy
			if !r.grid.Contains(x, y) {
				if r.strict {
					return fmt.Errorf("%w: command %d from %s", ErrOffPlateau, i, r.pos)
				}
				continue
			}
			r.pos.X, r.pos.Y = x, y
		default:
			return fmt.Errorf("%w: %q", ErrInvalidCommand, byte(c))
		}
	}
	return nil
}

// Run parses input, drives a rover through it and returns "<x> <y> <heading>".
func Run(input string, strict bool) (string, error) {
	in, err := Parse(input)
	if err != nil {
		return "", err
	}
	r := New(in.Grid, in.Start, strict)
	if err := r.Execute(in.Commands); err != nil {
		return "", err
	}
	return r.Position().String(), nil
}
