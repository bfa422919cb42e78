package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates_RoundTrip(t *testing.T) {
	for s := AppInitialize; s <= AppQuit; s++ {
		got, err := ParseAppState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for s := RoundIdle; s <= RoundNextStage; s++ {
		got, err := ParseRoundState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseAppState("Paused")
	assert.Error(t, err)
	_, err = ParseRoundState("")
	assert.Error(t, err)

	assert.Equal(t, "AppState(9)", AppState(9).String())
	assert.Equal(t, "RoundState(-1)", RoundState(-1).String())
}

func TestFlows_Default(t *testing.T) {
	f, err := ParseFlows(DefaultFlows())
	require.NoError(t, err)

	assert.Equal(t, "Initialize", f.App.Initial)
	assert.Equal(t, "Idle", f.Round.Initial)
	assert.Len(t, f.App.Transitions, 6)
	assert.Len(t, f.Round.Transitions, 6)
	assert.Equal(t, "prepareNextStage", f.Round.Transitions[3].Before)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "GameIsOver", GameIsOver.String())
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}
