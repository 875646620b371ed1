package yahtzee

import (
	"fmt"
	"strings"
)

// CategoryID identifies one of the fourteen scoring categories.
type CategoryID int

const (
	CategoryUnspecified CategoryID = iota
	Ones
	Twos
	Threes
	Fours
	Fives
	Sixes
	Pair
	TwoPairs
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	FullHouse
	Yahtzee
)

var categoryNames = [...]string{
	CategoryUnspecified: "UNSPECIFIED",
	Ones:                "ONES",
	Twos:                "TWOS",
	Threes:              "THREES",
	Fours:               "FOURS",
	Fives:               "FIVES",
	Sixes:               "SIXES",
	Pair:                "PAIR",
	TwoPairs:            "TWO_PAIRS",
	ThreeOfAKind:        "THREE_OF_A_KIND",
	FourOfAKind:         "FOUR_OF_A_KIND",
	SmallStraight:       "SMALL_STRAIGHT",
	LargeStraight:       "LARGE_STRAIGHT",
	FullHouse:           "FULL_HOUSE",
	Yahtzee:             "YAHTZEE",
}

func (id CategoryID) String() string {
	if id < 0 || int(id) >= len(categoryNames) {
		return fmt.Sprintf("CategoryID(%d)", int(id))
	}
	return categoryNames[id]
}

// Valid reports whether id names one of the fourteen categories.
func (id CategoryID) Valid() bool {
	return id >= Ones && id <= Yahtzee
}

// AllCategories returns every category identifier in card order.
func AllCategories() []CategoryID {
	ids := make([]CategoryID, 0, int(Yahtzee))
	for id := Ones; id <= Yahtzee; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ParseCategory resolves a name such as "two_pairs", "Two Pairs" or
// "TWO-PAIRS" to its identifier.
func ParseCategory(name string) (CategoryID, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for id := Ones; id <= Yahtzee; id++ {
		if categoryNames[id] == norm {
			return id, nil
		}
	}
	return CategoryUnspecified, fmt.Errorf("%w: %q", ErrUnsupportedCategory, name)
}
