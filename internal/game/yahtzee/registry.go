package yahtzee

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds a Category.
type Constructor func() Category

// Registry maps category identifiers to the rule that scores them.
// It is the category factory: every Category in play comes from Create.
type Registry struct {
	constructors map[CategoryID]Constructor
	mu           sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[CategoryID]Constructor),
	}
}

// NewStandardRegistry creates a registry holding all fourteen categories.
func NewStandardRegistry() *Registry {
	return &Registry{constructors: standardCategories()}
}

func standardCategories() map[CategoryID]Constructor {
	number := func(id CategoryID, target int) Constructor {
		return func() Category { return NewNumberCategory(id, target) }
	}
	return map[CategoryID]Constructor{
		Ones:          number(Ones, 1),
		Twos:          number(Twos, 2),
		Threes:        number(Threes, 3),
		Fours:         number(Fours, 4),
		Fives:         number(Fives, 5),
		Sixes:         number(Sixes, 6),
		Pair:          func() Category { return PairCategory{} },
		TwoPairs:      func() Category { return TwoPairsCategory{} },
		ThreeOfAKind:  func() Category { return NewOfAKindCategory(ThreeOfAKind, 3) },
		FourOfAKind:   func() Category { return NewOfAKindCategory(FourOfAKind, 4) },
		SmallStraight: func() Category { return NewSmallStraight() },
		LargeStraight: func() Category { return NewLargeStraight() },
		FullHouse:     func() Category { return FullHouseCategory{} },
		Yahtzee:       func() Category { return YahtzeeCategory{} },
	}
}

// Register adds or replaces the rule for id.
func (r *Registry) Register(id CategoryID, c Constructor) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedCategory, id)
	}
	if c == nil {
		return fmt.Errorf("cannot register nil constructor for %s", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[id] = c
	return nil
}

// Create returns the Category for id, or ErrUnsupportedCategory when no
// rule is registered.
func (r *Registry) Create(id CategoryID) (Category, error) {
	r.mu.RLock()
	c, ok := r.constructors[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCategory, id)
	}
	return c(), nil
}

// CreateByName parses name and creates its Category.
func (r *Registry) CreateByName(name string) (Category, error) {
	id, err := ParseCategory(name)
	if err != nil {
		return nil, err
	}
	return r.Create(id)
}

// IDs returns the registered identifiers in card order.
func (r *Registry) IDs() []CategoryID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]CategoryID, 0, len(r.constructors))
	for id := range r.constructors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of registered categories.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.constructors)
}

// standard is never registered on, so NewCategory always returns the
// standard rules.
var standard = NewStandardRegistry()

// NewCategory creates one of the fourteen standard categories.
func NewCategory(id CategoryID) (Category, error) {
	return standard.Create(id)
}
