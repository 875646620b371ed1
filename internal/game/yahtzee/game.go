package yahtzee

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Game owns the score card of every registered player.
type Game struct {
	cards map[string]*ScoreCard
}

// NewGame creates a game with no players.
func NewGame() *Game {
	return &Game{cards: make(map[string]*ScoreCard)}
}

// RegisterPlayer creates an empty score card for name. Registering an
// existing player is a no-op.
func (g *Game) RegisterPlayer(name string) {
	if _, ok := g.cards[name]; ok {
		return
	}
	g.cards[name] = NewScoreCard()
	log.Debug().Str("player", name).Msg("Player registered")
}

// Has reports whether name is registered.
func (g *Game) Has(name string) bool {
	_, ok := g.cards[name]
	return ok
}

// Players returns the registered names sorted alphabetically.
func (g *Game) Players() []string {
	names := make([]string, 0, len(g.cards))
	for name := range g.cards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssignCategory scores category against roll on player's card.
func (g *Game) AssignCategory(player string, category Category, roll Roll) (Score, error) {
	card, err := g.card(player)
	if err != nil {
		return 0, err
	}

	score, err := card.Assign(category, roll)
	if err != nil {
		log.Debug().Err(err).Str("player", player).Msg("Category assignment rejected")
		return 0, err
	}

	log.Debug().
		Str("player", player).
		Stringer("category", category.ID()).
		Stringer("roll", roll).
		Int("score", score.Int()).
		Msg("Category assigned")
	return score, nil
}

// ScoreFor returns player's total.
func (g *Game) ScoreFor(player string) (int, error) {
	card, err := g.card(player)
	if err != nil {
		return 0, err
	}
	return card.Total(), nil
}

// ScoreCardFor returns a copy of player's card. Changes to the copy do not
// reach the game.
func (g *Game) ScoreCardFor(player string) (*ScoreCard, error) {
	card, err := g.card(player)
	if err != nil {
		return nil, err
	}
	return card.Clone(), nil
}

func (g *Game) card(player string) (*ScoreCard, error) {
	card, ok := g.cards[player]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	return card, nil
}
