package yahtzee

const (
	smallStraightScore = 15
	largeStraightScore = 20
	yahtzeeScore       = 50
)

// Category is a scoring rule for one CategoryID.
type Category interface {
	// ID returns the identifier the score is recorded under.
	ID() CategoryID

	// ScoreFor evaluates the rule against roll. It never fails; a roll
	// that does not satisfy the rule scores zero.
	ScoreFor(roll Roll) Score
}

// NumberCategory scores the sum of the dice showing its target face
// (Ones through Sixes).
type NumberCategory struct {
	id     CategoryID
	target int
}

// NewNumberCategory creates the upper-section category for target.
func NewNumberCategory(id CategoryID, target int) *NumberCategory {
	return &NumberCategory{id: id, target: target}
}

func (c *NumberCategory) ID() CategoryID { return c.id }

func (c *NumberCategory) ScoreFor(roll Roll) Score {
	return Score(roll.SumMatching(c.target))
}

// PairCategory scores the highest pair.
type PairCategory struct{}

func (PairCategory) ID() CategoryID { return Pair }

func (PairCategory) ScoreFor(roll Roll) Score {
	pairs := roll.GroupsWithSizeAtLeast(2)
	if len(pairs) == 0 {
		return 0
	}
	return Score(pairs[0] * 2)
}

// TwoPairsCategory scores the two highest distinct pairs.
type TwoPairsCategory struct{}

func (TwoPairsCategory) ID() CategoryID { return TwoPairs }

func (TwoPairsCategory) ScoreFor(roll Roll) Score {
	pairs := roll.GroupsWithSizeAtLeast(2)
	if len(pairs) < 2 {
		return 0
	}
	return Score(pairs[0]*2 + pairs[1]*2)
}

// OfAKindCategory scores size dice of the highest face that appears at
// least size times. It backs Three of a Kind and Four of a Kind.
type OfAKindCategory struct {
	id   CategoryID
	size int
}

// NewOfAKindCategory creates an n-of-a-kind rule.
func NewOfAKindCategory(id CategoryID, size int) *OfAKindCategory {
	return &OfAKindCategory{id: id, size: size}
}

func (c *OfAKindCategory) ID() CategoryID { return c.id }

func (c *OfAKindCategory) ScoreFor(roll Roll) Score {
	groups := roll.GroupsWithSizeAtLeast(c.size)
	if len(groups) == 0 {
		return 0
	}
	return Score(groups[0] * c.size)
}

// StraightCategory awards a fixed score when the roll's distinct faces are
// exactly the straight's faces.
type StraightCategory struct {
	id     CategoryID
	faces  []int
	points Score
}

// NewSmallStraight returns the 1-2-3-4-5 straight worth 15.
func NewSmallStraight() *StraightCategory {
	return &StraightCategory{id: SmallStraight, faces: []int{1, 2, 3, 4, 5}, points: smallStraightScore}
}

// NewLargeStraight returns the 2-3-4-5-6 straight worth 20.
func NewLargeStraight() *StraightCategory {
	return &StraightCategory{id: LargeStraight, faces: []int{2, 3, 4, 5, 6}, points: largeStraightScore}
}

func (c *StraightCategory) ID() CategoryID { return c.id }

func (c *StraightCategory) ScoreFor(roll Roll) Score {
	if roll.MatchesExactSet(c.faces...) {
		return c.points
	}
	return 0
}

// FullHouseCategory scores the sum of all dice when the roll is a three
// and a pair of different faces.
type FullHouseCategory struct{}

func (FullHouseCategory) ID() CategoryID { return FullHouse }

func (FullHouseCategory) ScoreFor(roll Roll) Score {
	var three, two bool
	for _, g := range roll.GroupedByFace() {
		switch g.Count {
		case 3:
			three = true
		case 2:
			two = true
		}
	}
	if three && two {
		return Score(roll.Sum())
	}
	return 0
}

// YahtzeeCategory scores 50 when all five dice match.
type YahtzeeCategory struct{}

func (YahtzeeCategory) ID() CategoryID { return Yahtzee }

func (YahtzeeCategory) ScoreFor(roll Roll) Score {
	if roll.AllSame() {
		return yahtzeeScore
	}
	return 0
}
