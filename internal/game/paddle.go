package game

// Paddle is the player's bat and life counter.
type Paddle struct {
	X     int
	Width int
	Lives int

	field      int
	startLives int
}

func newPaddle(cfg Config) Paddle {
	p := Paddle{Width: cfg.PaddleWidth, field: cfg.Width(), startLives: cfg.Lives}
	p.Reset(true)

	return p
}

// Reset centers the paddle. A new game also restores the lives.
func (p *Paddle) Reset(newGame bool) {
	p.X = (p.field - p.Width) / 2
	if newGame {
		p.Lives = p.startLives
	}
}

// Move shifts the paddle by dx cells, stopping at the walls.
func (p *Paddle) Move(dx int) {
	p.X = max(0, min(p.X+dx, p.field-p.Width))
}

// Center returns the x coordinate of the paddle's middle.
func (p *Paddle) Center() float64 { return float64(p.X) + float64(p.Width)/2 }

// Covers reports whether x falls on the paddle.
func (p *Paddle) Covers(x float64) bool {
	return x >= float64(p.X) && x < float64(p.X+p.Width)
}
