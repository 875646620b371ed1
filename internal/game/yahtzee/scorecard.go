package yahtzee

import "fmt"

// ScoreCard records one player's scores. Each category can be assigned
// exactly once.
type ScoreCard struct {
	scores map[CategoryID]Score
}

// NewScoreCard creates an empty score card.
func NewScoreCard() *ScoreCard {
	return &ScoreCard{scores: make(map[CategoryID]Score)}
}

// Assign scores category against roll and records it under the
// category's identifier. The zero Roll is rejected with ErrInvalidDice. A second assignment of the same identifier fails
// with ErrDuplicateAssignment and leaves the stored score untouched.
func (c *ScoreCard) Assign(category Category, roll Roll) (Score, error) {
	if category == nil {
		return 0, fmt.Errorf("%w: nil category", ErrUnsupportedCategory)
	}

	if !roll.Valid() {
		return 0, fmt.Errorf("%w: roll %s was not built by NewRoll", ErrInvalidDice, roll)
	}

	id := category.ID()
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCategory, id)
	}
	if _, ok := c.scores[id]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateAssignment, id)
	}

	score := category.ScoreFor(roll)
	c.scores[id] = score
	return score, nil
}

// Get returns the score stored for id, or zero when it has not been played.
func (c *ScoreCard) Get(id CategoryID) Score {
	return c.scores[id]
}

// Assigned reports whether id has been played.
func (c *ScoreCard) Assigned(id CategoryID) bool {
	_, ok := c.scores[id]
	return ok
}

// Total returns the sum of every stored score.
func (c *ScoreCard) Total() int {
	total := 0
	for _, s := range c.scores {
		total += s.Int()
	}
	return total
}

// Categories returns the played identifiers in card order.
func (c *ScoreCard) Categories() []CategoryID {
	var ids []CategoryID
	for _, id := range AllCategories() {
		if c.Assigned(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Remaining returns the identifiers not yet played, in card order.
func (c *ScoreCard) Remaining() []CategoryID {
	var ids []CategoryID
	for _, id := range AllCategories() {
		if !c.Assigned(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Complete reports whether every category has been played.
func (c *ScoreCard) Complete() bool {
	return len(c.scores) == len(categoryNames)-1
}

// Clone returns an independent copy of the card.
func (c *ScoreCard) Clone() *ScoreCard {
	cp := NewScoreCard()
	for id, s := range c.scores {
		cp.scores[id] = s
	}
	return cp
}
