// Package game is a headless Breakout model driven by two state machines:
// the application machine (menus, setup, game over) and the round machine
// (idle, playing, dead, next stage). Both are built from flows.yaml.
package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/enetx/breakout/fsm"
	"github.com/enetx/breakout/internal/logger"
)

// Session owns both machines and everything they act on.
// It is driven from a single goroutine through Handle and Update.
type Session struct {
	cfg   Config
	log   *slog.Logger
	flows []byte
	rng   *rand.Rand

	app    *fsm.FSM[AppState]
	round  *fsm.FSM[RoundState]
	events *fsm.Notifier[Event]

	level  *Level
	score  Score
	paddle Paddle
	ball   Ball
	msgs   Messages
	stage  int

	stageElapsed time.Duration
	overElapsed  time.Duration
}

// Option configures a Session during New.
type Option func(*Session)

// WithLogger sets the session logger. Machine diagnostics go to it too.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFlows replaces the built-in transition tables.
func WithFlows(data []byte) Option {
	return func(s *Session) { s.flows = data }
}

// New builds a session in the Initialize state. Call Start to reach the main menu.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		log:    slog.Default(),
		flows:  defaultFlows,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		events: fsm.NewNotifier[Event](),
		level:  NewLevel(cfg.Rows, cfg.Cols),
		paddle: newPaddle(cfg),
		ball:   newBall(cfg),
		stage:  1,
	}

	for _, opt := range opts {
		opt(s)
	}

	flows, err := ParseFlows(s.flows)
	if err != nil {
		return nil, err
	}

	appInitial, err := fsm.InitialState(flows.App, ParseAppState)
	if err != nil {
		return nil, fmt.Errorf("app flow: %w", err)
	}

	roundInitial, err := fsm.InitialState(flows.Round, ParseRoundState)
	if err != nil {
		return nil, fmt.Errorf("round flow: %w", err)
	}

	s.app = fsm.New(appInitial, fsm.WithLogger[AppState](s.log.With("machine", "app")))
	s.round = fsm.New(roundInitial, fsm.WithLogger[RoundState](s.log.With("machine", "round")))

	if err := fsm.Apply(s.app, flows.App, ParseAppState, s.appHooks()); err != nil {
		return nil, fmt.Errorf("app flow: %w", err)
	}

	if err := fsm.Apply(s.round, flows.Round, ParseRoundState, s.roundHooks()); err != nil {
		return nil, fmt.Errorf("round flow: %w", err)
	}

	s.app.OnChange(func(fsm.Change[AppState]) { s.logChange() })
	s.round.OnChange(func(fsm.Change[RoundState]) { s.logChange() })

	s.events.Subscribe(s.onBallEvent)
	s.events.Subscribe(s.onPaddleEvent)
	s.events.Subscribe(s.onScoreEvent)

	return s, nil
}

// Start leaves Initialize for the main menu.
func (s *Session) Start() { fire(s.log, s.app, AppMainMenu) }

// App returns the application machine.
func (s *Session) App() *fsm.FSM[AppState] { return s.app }

// Round returns the round machine.
func (s *Session) Round() *fsm.FSM[RoundState] { return s.round }

// Level returns the current brick grid.
func (s *Session) Level() *Level { return s.level }

// On subscribes fn to the session's event bus.
func (s *Session) On(fn func(Event)) fsm.Subscription { return s.events.Subscribe(fn) }

// Done reports whether the player chose to quit.
func (s *Session) Done() bool { return s.app.Current() == AppQuit }

// Handle applies one player command. Commands that make no sense in the
// current state are ignored.
func (s *Session) Handle(cmd Command) {
	switch cmd {
	case CmdPlay:
		if s.app.Current() == AppMainMenu {
			fire(s.log, s.app, AppSetupNewGame)
		}
	case CmdQuit:
		if s.app.Current() == AppMainMenu {
			fire(s.log, s.app, AppQuit)
		}
	case CmdLaunch:
		if s.app.Current() != AppGame {
			return
		}

		switch s.round.Current() {
		case RoundIdle:
			s.msgs.Start = false
			fire(s.log, s.round, RoundPlaying)
		case RoundDead:
			s.msgs.Respawn = false
			fire(s.log, s.round, RoundPlaying)
		}
	case CmdLeft, CmdRight:
		if s.app.Current() != AppGame || s.round.Current() != RoundPlaying {
			return
		}

		step := s.cfg.PaddleStep
		if cmd == CmdLeft {
			step = -step
		}
		s.paddle.Move(step)
	case CmdExit:
		if s.app.Current() == AppGameOver && s.msgs.GameOverAction {
			fire(s.log, s.app, AppMainMenu)
		}
	}
}

// Update advances the session by dt.
func (s *Session) Update(dt time.Duration) {
	switch s.app.Current() {
	case AppSetupNewGame:
		fire(s.log, s.app, AppGame)
		if s.round.Current() != RoundIdle {
			fire(s.log, s.round, RoundIdle)
		}
	case AppGame:
		switch s.round.Current() {
		case RoundPlaying:
			s.step(dt.Seconds())
		case RoundNextStage:
			s.stageElapsed += dt
			if s.stageElapsed >= s.cfg.StageDelay {
				s.msgs.NextStage = false
				if fire(s.log, s.round, RoundIdle) {
					s.msgs.Start = true
				}
			}
		}
	case AppGameOver:
		if s.msgs.GameOverAction {
			return
		}

		s.overElapsed += dt
		if s.overElapsed >= s.cfg.GameOverDelay {
			s.msgs.GameOverAction = true
		}
	}
}

func (s *Session) appHooks() fsm.Registry[AppState] {
	return fsm.Registry[AppState]{
		Actions: map[string]fsm.Action{
			"enterMainMenu": s.enterMainMenu,
			"loadGame":      s.loadGame,
			"startGameLoop": s.startGameLoop,
		},
		Announcers: map[string]fsm.Announcer[AppState]{
			"settingUpNewGame": announce[AppState](s, SettingUpNewGame),
			"gameStarted": func(c fsm.Change[AppState]) error {
				s.msgs.Start = true
				return announce[AppState](s, GameStarted)(c)
			},
			"gameIsOver": func(c fsm.Change[AppState]) error {
				s.msgs.GameOver = true
				s.overElapsed = 0
				return announce[AppState](s, GameIsOver)(c)
			},
			"backToMainMenu": announce[AppState](s, BackToMainMenu),
		},
	}
}

func (s *Session) roundHooks() fsm.Registry[RoundState] {
	return fsm.Registry[RoundState]{
		Actions: map[string]fsm.Action{
			"prepareNextStage": s.prepareNextStage,
			"checkGameOver":    s.checkGameOver,
		},
		Announcers: map[string]fsm.Announcer[RoundState]{
			"startPlaying": announce[RoundState](s, StartPlaying),
			"nextStage": func(c fsm.Change[RoundState]) error {
				s.msgs.NextStage = true
				s.stageElapsed = 0
				return announce[RoundState](s, NextStage)(c)
			},
			"playerDied": func(c fsm.Change[RoundState]) error {
				if s.paddle.Lives > 0 {
					s.msgs.Respawn = true
				} else {
					s.msgs.GameOver = true
				}
				return announce[RoundState](s, PlayerDied)(c)
			},
			"playerRespawn": announce[RoundState](s, PlayerRespawn),
		},
	}
}

// announce publishes kind on the bus whenever its transition is taken.
func announce[T comparable](s *Session, kind EventKind) fsm.Announcer[T] {
	return func(fsm.Change[T]) error {
		s.events.Emit(Event{Kind: kind})
		return nil
	}
}

func (s *Session) enterMainMenu() error {
	s.msgs = Messages{}
	s.ball.Visible = false
	return nil
}

func (s *Session) loadGame() error {
	s.level.Generate(s.rng)
	return nil
}

func (s *Session) startGameLoop() error {
	s.stageElapsed, s.overElapsed = 0, 0
	return nil
}

func (s *Session) prepareNextStage() error {
	s.level.Generate(s.rng)
	s.stage++
	return nil
}

// checkGameOver ends the game once the last life is gone. It runs after every
// subscriber has seen PlayerDied.
func (s *Session) checkGameOver() error {
	if s.paddle.Lives < 0 {
		fire(s.log, s.app, AppGameOver)
	}
	return nil
}

func (s *Session) onBallEvent(e Event) {
	switch e.Kind {
	case SettingUpNewGame, NextStage:
		s.ball.Visible = false
		s.ball.Reset()
	case StartPlaying:
		s.ball.Visible = true
		s.ball.Launch(s.cfg.MinSpeed)
	case PlayerDied:
		s.ball.Freeze()
	case PlayerRespawn:
		s.ball.Reset()
		s.ball.Launch(s.cfg.MinSpeed)
	}
}

func (s *Session) onPaddleEvent(e Event) {
	switch e.Kind {
	case SettingUpNewGame:
		s.paddle.Reset(true)
	case PlayerDied:
		s.paddle.Lives--
	case PlayerRespawn:
		s.paddle.Reset(false)
	}
}

func (s *Session) onScoreEvent(e Event) {
	switch e.Kind {
	case SettingUpNewGame:
		s.score.Reset()
		s.stage = 1
	case BrickBroken:
		s.score.Add(e.Points)
	}
}

func (s *Session) logChange() {
	s.log.Debug("state changed", "app", s.app.Current().String(), "round", s.round.Current().String())
}

// fire moves m to target. Undefined transitions are already logged by the
// machine; hook failures are logged here. Neither stops the session.
func fire[T comparable](log *slog.Logger, m *fsm.FSM[T], target T) bool {
	err := m.Fire(target)
	if err == nil {
		return true
	}

	if !fsm.IsUndefined[T](err) {
		log.Warn("transition failed", "to", fmt.Sprint(target), logger.Error(err))
	}

	return false
}
