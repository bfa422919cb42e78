package game

// Messages are the HUD banners currently shown.
type Messages struct {
	Start          bool
	Respawn        bool
	NextStage      bool
	GameOver       bool
	GameOverAction bool
}

// View is a snapshot of a session for rendering. It shares no memory with the session.
type View struct {
	App   AppState
	Round RoundState

	Width      int
	Height     int
	BrickTop   int
	BrickWidth int
	Bricks     [][]BrickType

	PaddleX     int
	PaddleRow   int
	PaddleWidth int

	BallX, BallY int
	BallVisible  bool

	Score    int
	Lives    int
	Stage    int
	Messages Messages
}

// View returns the current snapshot.
func (s *Session) View() View {
	return View{
		App:         s.app.Current(),
		Round:       s.round.Current(),
		Width:       s.cfg.Width(),
		Height:      s.cfg.Height,
		BrickTop:    s.cfg.BrickTop,
		BrickWidth:  s.cfg.BrickWidth,
		Bricks:      s.level.grid(),
		PaddleX:     s.paddle.X,
		PaddleRow:   s.cfg.PaddleRow(),
		PaddleWidth: s.paddle.Width,
		BallX:       min(int(s.ball.X), s.cfg.Width()-1),
		BallY:       min(int(s.ball.Y), s.cfg.Height-1),
		BallVisible: s.ball.Visible,
		Score:       s.score.Value(),
		Lives:       max(0, s.paddle.Lives),
		Stage:       s.stage,
		Messages:    s.msgs,
	}
}
