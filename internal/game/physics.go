package game

import "math"

const (
	// maxTravel bounds how far the ball moves per integration step, in cells.
	maxTravel = 0.5
	// paddleSpread scales the horizontal component of a paddle bounce.
	paddleSpread = 1.5
	edge         = 1e-6
	// maxFrame caps the time integrated by one Update, in seconds.
	maxFrame = 0.1
)

// step integrates the ball over dt seconds while the round is playing.
func (s *Session) step(dt float64) {
	speed := s.ball.Speed()
	if speed == 0 || dt <= 0 {
		return
	}

	dt = min(dt, maxFrame)
	n := int(math.Ceil(speed * dt / maxTravel))
	h := dt / float64(n)

	for range n {
		if s.round.Current() != RoundPlaying {
			return
		}
		s.advance(h)
	}
}

func (s *Session) advance(h float64) {
	b := &s.ball
	width := float64(s.cfg.Width())
	paddleRow := float64(s.cfg.PaddleRow())

	x, y := b.X+b.VX*h, b.Y+b.VY*h
	bounced := false

	if x < 0 {
		x, b.VX = -x, -b.VX
		bounced = true
	} else if x >= width {
		x, b.VX = min(2*width-x, width-edge), -b.VX
		bounced = true
	}

	if y < 0 {
		y, b.VY = -y, -b.VY
		bounced = true
	}

	if b.VY > 0 && b.Y < paddleRow && y >= paddleRow && s.paddle.Covers(x) {
		offset := (x - s.paddle.Center()) / (float64(s.paddle.Width) / 2)
		b.aim(offset*paddleSpread, -1)
		y = min(2*paddleRow-y, paddleRow-edge)
		bounced = true
	}

	if y >= float64(s.cfg.Height) {
		b.X, b.Y = x, float64(s.cfg.Height)-edge
		fire(s.log, s.round, RoundDead)
		return
	}

	row := int(math.Floor(y)) - s.cfg.BrickTop
	col := int(math.Floor(x)) / s.cfg.BrickWidth

	if brick, ok := s.level.Remove(row, col); ok {
		if math.Floor(b.Y) != math.Floor(y) {
			b.VY = -b.VY
			y = b.Y
		} else {
			b.VX = -b.VX
			x = b.X
		}

		b.X, b.Y = x, y
		s.speedUp()
		s.events.Emit(Event{Kind: BrickBroken, Brick: brick, Points: brick.Value()})

		if s.level.Complete() {
			fire(s.log, s.round, RoundNextStage)
		}
		return
	}

	b.X, b.Y = x, y

	if bounced {
		s.speedUp()
		s.events.Emit(Event{Kind: BallBounced})
	}
}

// speedUp applies the per-bounce multiplier, keeping the speed in range.
func (s *Session) speedUp() {
	speed := s.ball.Speed() * s.cfg.SpeedMultiplier
	s.ball.setSpeed(max(s.cfg.MinSpeed, min(speed, s.cfg.MaxSpeed)))
}
