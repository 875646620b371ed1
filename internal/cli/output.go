package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dice-katas/internal/game"
	"dice-katas/internal/game/yahtzee"
	"dice-katas/internal/service"
)

func errInvalidFormat(format string) error {
	return fmt.Errorf("invalid output format %q: must be text or json", format)
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *game.Result:
		fmt.Fprintln(o.w, v.Output)
	case []KataInfo:
		o.printKatas(v)
	case []CategoryInfo:
		o.printCategories(v)
	case ScoreResult:
		fmt.Fprintf(o.w, "%s %v: %d\n", v.Name, v.Dice, v.Score)
	case GameReport:
		o.printGameReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printKatas(katas []KataInfo) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, k := range katas {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Command, k.Name, k.Description)
	}
	_ = tw.Flush()
}

func (o *Output) printCategories(categories []CategoryInfo) {
	for _, c := range categories {
		fmt.Fprintf(o.w, "%-16s %s\n", c.ID, c.Name)
	}
}

func (o *Output) printGameReport(r GameReport) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tTOTAL\tPLAYED")
	for _, s := range r.Standings {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d/%d\n", s.Rank, s.Player, s.Total, s.Played, s.Played+s.Remaining)
	}
	_ = tw.Flush()

	if r.Winner != "" {
		fmt.Fprintf(o.w, "Winner: %s\n", r.Winner)
	} else if len(r.Standings) > 0 {
		fmt.Fprintln(o.w, "No outright winner")
	}
}

// KataInfo describes a registered kata.
type KataInfo struct {
	Command     string `json:"command"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryInfo describes a scoring category.
type CategoryInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScoreResult is a single category scored against a roll.
type ScoreResult struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Dice     []int  `json:"dice"`
	Score    int    `json:"score"`
}

// GameReport is the outcome of a replayed script.
type GameReport struct {
	Standings []service.Standing `json:"standings"`
	Winner    string             `json:"winner"`
}

// displayName turns THREE_OF_A_KIND into "Three Of A Kind".
func displayName(id yahtzee.CategoryID) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(id.String()), "_", " "))
}
