package game

import (
	"math/rand/v2"

	"github.com/enetx/g"
)

// BrickType is the kind of a brick; its value is the score it is worth.
type BrickType int

const (
	NoBrick BrickType = 0
	Red     BrickType = 10
	Green   BrickType = 25
	Blue    BrickType = 50
)

// Value returns the points awarded for breaking the brick.
func (b BrickType) Value() int { return int(b) }

func (b BrickType) String() string {
	switch b {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "None"
	}
}

// Level is the brick grid of one stage.
type Level struct {
	rows, cols int
	cells      g.Slice[BrickType]
	remaining  int
}

// NewLevel returns an empty rows x cols grid.
func NewLevel(rows, cols int) *Level {
	return &Level{
		rows:  rows,
		cols:  cols,
		cells: make(g.Slice[BrickType], rows*cols),
	}
}

// Generate fills every cell with a brick of a random type.
func (l *Level) Generate(rng *rand.Rand) {
	for i := range l.cells {
		switch rng.IntN(3) {
		case 0:
			l.cells[i] = Red
		case 1:
			l.cells[i] = Green
		default:
			l.cells[i] = Blue
		}
	}

	l.remaining = len(l.cells)
}

// Set places b at (row, col). It is meant for building fixed layouts.
func (l *Level) Set(row, col int, b BrickType) {
	if !l.inside(row, col) {
		return
	}

	i := row*l.cols + col
	switch {
	case l.cells[i] == NoBrick && b != NoBrick:
		l.remaining++
	case l.cells[i] != NoBrick && b == NoBrick:
		l.remaining--
	}

	l.cells[i] = b
}

// At returns the brick at (row, col), if any.
func (l *Level) At(row, col int) (BrickType, bool) {
	if !l.inside(row, col) {
		return NoBrick, false
	}

	b := l.cells[row*l.cols+col]
	return b, b != NoBrick
}

// Remove breaks the brick at (row, col) and returns it.
func (l *Level) Remove(row, col int) (BrickType, bool) {
	b, ok := l.At(row, col)
	if ok {
		l.Set(row, col, NoBrick)
	}

	return b, ok
}

func (l *Level) Rows() int      { return l.rows }
func (l *Level) Cols() int      { return l.cols }
func (l *Level) Remaining() int { return l.remaining }

// Complete reports whether every brick has been broken.
func (l *Level) Complete() bool { return l.remaining == 0 }

// Clear removes every brick.
func (l *Level) Clear() {
	for i := range l.cells {
		l.cells[i] = NoBrick
	}

	l.remaining = 0
}

func (l *Level) grid() [][]BrickType {
	out := make([][]BrickType, l.rows)
	for r := range out {
		out[r] = l.cells[r*l.cols : (r+1)*l.cols].Clone()
	}

	return out
}

func (l *Level) inside(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}
