// Package service provides the application services the command line
// drives: turn-script replay and standings.
package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"dice-katas/internal/game/yahtzee"
)

// ErrEmptyScript is returned when a script has neither players nor turns.
var ErrEmptyScript = errors.New("script has no players and no turns")

// Script is a recorded Yahtzee game.
//
//	players: [Honza, Satish]
//	turns:
//	  - {player: Honza, category: YAHTZEE, dice: [6, 6, 6, 6, 6]}
type Script struct {
	Players []string `yaml:"players" json:"players"`
	Turns   []Turn   `yaml:"turns" json:"turns"`
}

// Turn assigns one category for one player.
type Turn struct {
	Player   string `yaml:"player" json:"player"`
	Category string `yaml:"category" json:"category"`
	Dice     []int  `yaml:"dice" json:"dice"`
}

// ScriptService loads turn scripts and replays them into a game.
type ScriptService struct {
	categories *yahtzee.Registry
}

// NewScriptService creates a ScriptService. A nil registry means the
// standard categories.
func NewScriptService(categories *yahtzee.Registry) *ScriptService {
	if categories == nil {
		categories = yahtzee.NewStandardRegistry()
	}
	return &ScriptService{categories: categories}
}

// Load decodes a YAML script.
func (s *ScriptService) Load(r io.Reader) (*Script, error) {
	var script Script
	if err := yaml.NewDecoder(r).Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if len(script.Players) == 0 && len(script.Turns) == 0 {
		return nil, ErrEmptyScript
	}
	return &script, nil
}

// Replay registers the script's players on g and applies its turns in
// order. Turns are only applied for registered players; the first failing
// turn stops the replay and earlier turns stay applied.
func (s *ScriptService) Replay(g *yahtzee.Game, script *Script) error {
	for _, p := range script.Players {
		g.RegisterPlayer(p)
	}

	for i, t := range script.Turns {
		if err := s.apply(g, t); err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}
	}

	log.Info().
		Int("players", len(g.Players())).
		Int("turns", len(script.Turns)).
		Msg("Script replayed")
	return nil
}

func (s *ScriptService) apply(g *yahtzee.Game, t Turn) error {
	category, err := s.categories.CreateByName(t.Category)
	if err != nil {
		return err
	}
	roll, err := yahtzee.NewRoll(t.Dice...)
	if err != nil {
		return err
	}
	_, err = g.AssignCategory(t.Player, category, roll)
	return err
}
