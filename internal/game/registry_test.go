package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoKata struct {
	command string
}

func (k echoKata) Name() string        { return "Echo " + k.command }
func (k echoKata) Command() string     { return k.command }
func (k echoKata) Description() string { return "repeats its input" }

func (k echoKata) Play(ctx context.Context, input string) (*Result, error) {
	return &Result{Output: input}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(echoKata{command: "echo"}))
	assert.Equal(t, 1, r.Count())

	k, ok := r.Get("echo")
	require.True(t, ok)
	result, err := k.Play(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Output)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(echoKata{command: ""}))
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(echoKata{command: "echo"}))
	require.NoError(t, r.Register(echoKata{command: "echo"}))
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoKata{command: "echo"}))

	k, err := r.Lookup("echo")
	require.NoError(t, err)
	assert.Equal(t, "echo", k.Command())

	_, err = r.Lookup("rover")
	assert.ErrorIs(t, err, ErrKataNotFound)
}

func TestRegistry_ListAndCommandsSorted(t *testing.T) {
	r := NewRegistry()
	for _, c := range []string{"yahtzee", "rover", "bowling"} {
		require.NoError(t, r.Register(echoKata{command: c}))
	}

	assert.Equal(t, []string{"bowling", "rover", "yahtzee"}, r.Commands())

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, "bowling", list[0].Command())
	assert.Equal(t, "yahtzee", list[2].Command())
}
