package yahtzee

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustRoll builds a roll or fails the test.
func mustRoll(t testing.TB, faces ...int) Roll {
	t.Helper()
	r, err := NewRoll(faces...)
	require.NoError(t, err)
	return r
}

func TestNewRoll_Validation(t *testing.T) {
	tests := []struct {
		name    string
		faces   []int
		wantErr error
	}{
		{"five valid dice", []int{1, 2, 3, 4, 5}, nil},
		{"duplicates allowed", []int{6, 6, 6, 6, 6}, nil},
		{"no dice", nil, ErrInvalidRollSize},
		{"four dice", []int{1, 2, 3, 4}, ErrInvalidRollSize},
		{"six dice", []int{1, 2, 3, 4, 5, 6}, ErrInvalidRollSize},
		{"face too high", []int{1, 2, 3, 4, 7}, ErrInvalidDice},
		{"face too low", []int{0, 2, 3, 4, 5}, ErrInvalidDice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoll(tt.faces...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseRoll(t *testing.T) {
	r, err := ParseRoll("3", "3", "1", "5", "6")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1, 5, 6}, r.Faces())

	_, err = ParseRoll("3", "x", "1", "5", "6")
	assert.ErrorIs(t, err, ErrInvalidDice)

	_, err = ParseRoll("3", "3")
	assert.ErrorIs(t, err, ErrInvalidRollSize)
}

func TestRoll_SumMatching(t *testing.T) {
	r := mustRoll(t, 6, 1, 2, 6, 6)

	assert.Equal(t, 18, r.SumMatching(6))
	assert.Equal(t, 1, r.SumMatching(1))
	assert.Equal(t, 0, r.SumMatching(4))
}

func TestRoll_MatchesExactSet(t *testing.T) {
	tests := []struct {
		name     string
		faces    []int
		expected []int
		want     bool
	}{
		{"ordered small straight", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}, true},
		{"shuffled small straight", []int{5, 3, 1, 4, 2}, []int{1, 2, 3, 4, 5}, true},
		{"missing a face", []int{1, 1, 2, 3, 4}, []int{1, 2, 3, 4, 5}, false},
		{"extra face", []int{2, 3, 4, 5, 6}, []int{1, 2, 3, 4, 5}, false},
		{"set equality ignores multiplicity", []int{2, 2, 3, 3, 3}, []int{2, 3}, true},
		{"out of range expectation", []int{1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRoll(t, tt.faces...)
			assert.Equal(t, tt.want, r.MatchesExactSet(tt.expected...))
		})
	}
}

func TestRoll_GroupsWithSizeAtLeast(t *testing.T) {
	tests := []struct {
		name  string
		faces []int
		size  int
		want  []int
	}{
		{"two pairs highest first", []int{2, 2, 5, 5, 6}, 2, []int{5, 2}},
		{"no pairs", []int{1, 2, 3, 4, 5}, 2, nil},
		{"triple counts as pair", []int{3, 3, 3, 1, 1}, 2, []int{3, 1}},
		{"triple only", []int{3, 3, 3, 1, 1}, 3, []int{3}},
		{"yahtzee as quad", []int{4, 4, 4, 4, 4}, 4, []int{4}},
		{"size one lists every face", []int{1, 6, 1, 3, 3}, 1, []int{6, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustRoll(t, tt.faces...).GroupsWithSizeAtLeast(tt.size)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GroupsWithSizeAtLeast(%d) mismatch (-want +got):\n%s", tt.size, diff)
			}
		})
	}
}

func TestRoll_GroupedByFace(t *testing.T) {
	got := mustRoll(t, 5, 3, 5, 3, 5).GroupedByFace()
	want := []FaceGroup{{Face: 3, Count: 2}, {Face: 5, Count: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupedByFace mismatch (-want +got):\n%s", diff)
	}
}

func TestRoll_SumAndAllSame(t *testing.T) {
	assert.Equal(t, 21, mustRoll(t, 3, 3, 5, 5, 5).Sum())
	assert.True(t, mustRoll(t, 2, 2, 2, 2, 2).AllSame())
	assert.False(t, mustRoll(t, 2, 2, 2, 2, 1).AllSame())
}

func TestRoll_String(t *testing.T) {
	assert.Equal(t, "[1 2 3 4 5]", mustRoll(t, 1, 2, 3, 4, 5).String())
}

func TestRoll_Valid(t *testing.T) {
	assert.True(t, mustRoll(t, 1, 1, 1, 1, 1).Valid())
	assert.False(t, Roll{}.Valid())
}
