package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCategory_ScoreFor(t *testing.T) {
	tests := []struct {
		name     string
		category CategoryID
		dice     []int
		expected int
	}{
		// Upper section
		{"ones", Ones, []int{1, 1, 1, 4, 5}, 3},
		{"twos", Twos, []int{2, 2, 2, 2, 2}, 10},
		{"threes", Threes, []int{3, 3, 3, 1, 2}, 9},
		{"fours", Fours, []int{4, 4, 1, 2, 5}, 8},
		{"fives", Fives, []int{5, 5, 5, 5, 5}, 25},
		{"sixes", Sixes, []int{6, 1, 2, 6, 6}, 18},
		{"number absent", Fours, []int{1, 2, 3, 5, 6}, 0},

		// Pairs
		{"pair", Pair, []int{3, 3, 1, 5, 6}, 6},
		{"pair picks highest", Pair, []int{3, 3, 5, 5, 6}, 10},
		{"no pair", Pair, []int{1, 2, 3, 4, 5}, 0},
		{"two pairs", TwoPairs, []int{2, 2, 5, 5, 6}, 14},
		{"two pairs from full house", TwoPairs, []int{3, 3, 3, 6, 6}, 18},
		{"only one pairing", TwoPairs, []int{2, 2, 3, 4, 5}, 0},
		{"four of a kind is one pairing", TwoPairs, []int{5, 5, 5, 5, 2}, 0},

		// Of a kind
		{"three of a kind", ThreeOfAKind, []int{4, 4, 4, 2, 5}, 12},
		{"three of a kind from four", ThreeOfAKind, []int{4, 4, 4, 4, 5}, 12},
		{"no three of a kind", ThreeOfAKind, []int{4, 4, 2, 2, 5}, 0},
		{"four of a kind", FourOfAKind, []int{5, 5, 5, 5, 2}, 20},
		{"four of a kind from yahtzee", FourOfAKind, []int{6, 6, 6, 6, 6}, 24},
		{"no four of a kind", FourOfAKind, []int{5, 5, 5, 2, 2}, 0},

		// Straights
		{"small straight", SmallStraight, []int{1, 2, 3, 4, 5}, 15},
		{"small straight shuffled", SmallStraight, []int{4, 2, 5, 1, 3}, 15},
		{"small straight with duplicate", SmallStraight, []int{1, 1, 2, 3, 4}, 0},
		{"large straight", LargeStraight, []int{2, 3, 4, 5, 6}, 20},
		{"large is not small", SmallStraight, []int{2, 3, 4, 5, 6}, 0},
		{"small is not large", LargeStraight, []int{1, 2, 3, 4, 5}, 0},

		// Full house
		{"full house", FullHouse, []int{3, 3, 5, 5, 5}, 21},
		{"four of a kind is not full house", FullHouse, []int{1, 1, 1, 1, 2}, 0},
		{"yahtzee is not full house", FullHouse, []int{6, 6, 6, 6, 6}, 0},
		{"two pairs is not full house", FullHouse, []int{2, 2, 4, 4, 6}, 0},

		// Yahtzee
		{"yahtzee", Yahtzee, []int{6, 6, 6, 6, 6}, 50},
		{"almost yahtzee", Yahtzee, []int{6, 6, 6, 6, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := NewCategory(tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.category, category.ID())

			score := category.ScoreFor(mustRoll(t, tt.dice...))
			assert.Equal(t, tt.expected, score.Int())
		})
	}
}

// TestCategoryOrderIndependenceProperty checks that shuffling the dice never
// changes any category's score.
func TestCategoryOrderIndependenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		faces := rapid.SliceOfN(rapid.IntRange(1, 6), 5, 5).Draw(t, "faces")
		perm := rapid.Permutation(faces).Draw(t, "perm")

		a, err := NewRoll(faces...)
		if err != nil {
			t.Fatalf("NewRoll(%v): %v", faces, err)
		}
		b, err := NewRoll(perm...)
		if err != nil {
			t.Fatalf("NewRoll(%v): %v", perm, err)
		}

		for _, id := range AllCategories() {
			c, err := NewCategory(id)
			if err != nil {
				t.Fatalf("NewCategory(%s): %v", id, err)
			}
			if c.ScoreFor(a) != c.ScoreFor(b) {
				t.Fatalf("%s: %v scored %d but %v scored %d", id, faces, c.ScoreFor(a), perm, c.ScoreFor(b))
			}
		}
	})
}

// TestYahtzeeOnlyForUniformRollsProperty checks that Yahtzee scores 50 for
// uniform rolls and 0 otherwise.
func TestYahtzeeOnlyForUniformRollsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		faces := rapid.SliceOfN(rapid.IntRange(1, 6), 5, 5).Draw(t, "faces")
		roll, err := NewRoll(faces...)
		if err != nil {
			t.Fatalf("NewRoll(%v): %v", faces, err)
		}

		uniform := true
		for _, f := range faces[1:] {
			if f != faces[0] {
				uniform = false
			}
		}

		got := YahtzeeCategory{}.ScoreFor(roll).Int()
		if uniform && got != 50 {
			t.Fatalf("uniform roll %v scored %d, want 50", faces, got)
		}
		if !uniform && got != 0 {
			t.Fatalf("non-uniform roll %v scored %d, want 0", faces, got)
		}
	})
}

func TestCategoryID_String(t *testing.T) {
	assert.Equal(t, "ONES", Ones.String())
	assert.Equal(t, "THREE_OF_A_KIND", ThreeOfAKind.String())
	assert.Equal(t, "YAHTZEE", Yahtzee.String())
	assert.Equal(t, "CategoryID(99)", CategoryID(99).String())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    CategoryID
		wantErr bool
	}{
		{"ONES", Ones, false},
		{"twos", Twos, false},
		{"Two Pairs", TwoPairs, false},
		{"full-house", FullHouse, false},
		{"  yahtzee ", Yahtzee, false},
		{"CHANCE", CategoryUnspecified, true},
		{"UNSPECIFIED", CategoryUnspecified, true},
		{"", CategoryUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllCategories(t *testing.T) {
	ids := AllCategories()
	require.Len(t, ids, 14)
	assert.Equal(t, Ones, ids[0])
	assert.Equal(t, Yahtzee, ids[len(ids)-1])
	for _, id := range ids {
		assert.True(t, id.Valid(), id.String())
	}
	assert.False(t, CategoryUnspecified.Valid())
}
