package game

// Score is the running total of a game.
type Score struct {
	value int
}

func (s *Score) Add(points int) { s.value += points }
func (s *Score) Reset()         { s.value = 0 }
func (s *Score) Value() int     { return s.value }
