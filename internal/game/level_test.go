package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Generate(t *testing.T) {
	l := NewLevel(4, 5)
	assert.True(t, l.Complete())

	l.Generate(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, 20, l.Remaining())
	assert.False(t, l.Complete())

	seen := map[BrickType]bool{}
	for r := range l.Rows() {
		for c := range l.Cols() {
			b, ok := l.At(r, c)
			require.True(t, ok)
			assert.Contains(t, []BrickType{Red, Green, Blue}, b)
			seen[b] = true
		}
	}
	assert.NotEmpty(t, seen)
}

func TestLevel_Remove(t *testing.T) {
	l := NewLevel(2, 2)
	l.Set(0, 1, Green)
	l.Set(1, 1, Blue)
	require.Equal(t, 2, l.Remaining())

	b, ok := l.Remove(0, 1)
	assert.True(t, ok)
	assert.Equal(t, Green, b)
	assert.Equal(t, 1, l.Remaining())

	_, ok = l.Remove(0, 1)
	assert.False(t, ok, "already broken")

	_, ok = l.Remove(5, 0)
	assert.False(t, ok, "outside the grid")

	l.Remove(1, 1)
	assert.True(t, l.Complete())
}

func TestLevel_SetReplacesWithoutCounting(t *testing.T) {
	l := NewLevel(1, 1)
	l.Set(0, 0, Red)
	l.Set(0, 0, Blue)
	assert.Equal(t, 1, l.Remaining())

	l.Set(3, 3, Red)
	assert.Equal(t, 1, l.Remaining())
}

func TestBrickType(t *testing.T) {
	assert.Equal(t, 10, Red.Value())
	assert.Equal(t, 25, Green.Value())
	assert.Equal(t, 50, Blue.Value())
	assert.Equal(t, "Green", Green.String())
	assert.Equal(t, "None", NoBrick.String())
}

func TestPaddle_Move(t *testing.T) {
	p := newPaddle(DefaultConfig())
	assert.Equal(t, 23, p.X)
	assert.Equal(t, 3, p.Lives)

	p.Move(-100)
	assert.Equal(t, 0, p.X)

	p.Move(100)
	assert.Equal(t, 54-7, p.X)
	assert.True(t, p.Covers(53.5))
	assert.False(t, p.Covers(46.9))

	p.Lives = 0
	p.Reset(false)
	assert.Equal(t, 23, p.X)
	assert.Equal(t, 0, p.Lives)
}
