package game

import "math"

// Ball is a point moving through the playfield.
type Ball struct {
	X, Y    float64
	VX, VY  float64
	Visible bool

	startX, startY float64
}

func newBall(cfg Config) Ball {
	b := Ball{
		startX: float64(cfg.Width()) / 2,
		startY: float64(cfg.PaddleRow()) - 1.5,
	}
	b.Reset()

	return b
}

// Reset puts the ball back at its start position, at rest.
func (b *Ball) Reset() {
	b.X, b.Y = b.startX, b.startY
	b.Freeze()
}

// Freeze stops the ball where it is.
func (b *Ball) Freeze() { b.VX, b.VY = 0, 0 }

// Launch sends the ball straight up at speed.
func (b *Ball) Launch(speed float64) {
	b.VX, b.VY = 0, -speed
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 { return math.Hypot(b.VX, b.VY) }

// setSpeed rescales the velocity to speed, keeping its direction.
func (b *Ball) setSpeed(speed float64) {
	cur := b.Speed()
	if cur == 0 {
		return
	}

	b.VX *= speed / cur
	b.VY *= speed / cur
}

// aim points the ball along (dx, dy) at its current speed.
func (b *Ball) aim(dx, dy float64) {
	speed := b.Speed()
	n := math.Hypot(dx, dy)
	if n == 0 || speed == 0 {
		return
	}

	b.VX, b.VY = dx/n*speed, dy/n*speed
}
