package service

import (
	"sort"

	"dice-katas/internal/game/yahtzee"
)

// Standing is one player's place in a game.
type Standing struct {
	Rank      int    `json:"rank"`
	Player    string `json:"player"`
	Total     int    `json:"total"`
	Played    int    `json:"played"`
	Remaining int    `json:"remaining"`
}

// RankingService orders the players of a Yahtzee game.
type RankingService struct{}

// NewRankingService creates a new RankingService instance.
func NewRankingService() *RankingService {
	return &RankingService{}
}

// Standings returns every player sorted by total descending, then name.
// Players with equal totals share a rank.
func (s *RankingService) Standings(g *yahtzee.Game) []Standing {
	players := g.Players()
	standings := make([]Standing, 0, len(players))
	for _, name := range players {
		card, err := g.ScoreCardFor(name)
		if err != nil {
			// Players() only returns registered names.
			continue
		}
		standings = append(standings, Standing{
			Player:    name,
			Total:     card.Total(),
			Played:    len(card.Categories()),
			Remaining: len(card.Remaining()),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Total != standings[j].Total {
			return standings[i].Total > standings[j].Total
		}
		return standings[i].Player < standings[j].Player
	})

	for i := range standings {
		if i > 0 && standings[i].Total == standings[i-1].Total {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

// Winner returns the sole leader, or "" when the game is empty or the top
// total is shared.
func (s *RankingService) Winner(g *yahtzee.Game) string {
	standings := s.Standings(g)
	if len(standings) == 0 {
		return ""
	}
	if len(standings) > 1 && standings[1].Total == standings[0].Total {
		return ""
	}
	return standings[0].Player
}
