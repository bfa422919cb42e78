// Command breakout plays Breakout in the terminal.
//
//	breakout            play
//	breakout -dot app   print the application flow as Graphviz DOT and exit
//	breakout -dot round print the round flow
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/enetx/breakout/internal/config"
	"github.com/enetx/breakout/internal/game"
	"github.com/enetx/breakout/internal/logger"
	"github.com/enetx/breakout/internal/sound"
	"github.com/enetx/breakout/internal/tui"
	"github.com/enetx/breakout/internal/watch"
)

// Config is the host configuration.
type Config struct {
	TickRate   int    `env:"BREAKOUT_TICK_RATE" envDefault:"60"`
	LogLevel   string `env:"BREAKOUT_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"BREAKOUT_LOG_FORMAT" envDefault:"text"`
	LogFile    string `env:"BREAKOUT_LOG_FILE" envDefault:"breakout.log"`
	WatchAddr  string `env:"BREAKOUT_WATCH_ADDR"`
	Sound      bool   `env:"BREAKOUT_SOUND" envDefault:"true"`
	SampleRate int    `env:"BREAKOUT_SAMPLE_RATE" envDefault:"44100"`

	Game game.Config
}

func main() {
	dot := flag.String("dot", "", "print the `machine` (app or round) as Graphviz DOT and exit")
	flag.Parse()

	if err := run(*dot); err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		os.Exit(1)
	}
}

func run(dot string) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	if dot != "" {
		return printDOT(os.Stdout, cfg.Game, dot)
	}

	if cfg.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", cfg.TickRate)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	log, err := newLogger(cfg, logFile)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	session, err := game.New(cfg.Game, game.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WatchAddr != "" {
		hub := watch.NewHub(watch.WithLogger(log))
		watch.Attach(hub, "app", session.App())
		watch.Attach(hub, "round", session.Round())

		go func() {
			if err := watch.NewServer(hub, log).Run(ctx, cfg.WatchAddr); err != nil {
				log.Error("watch server stopped", logger.Error(err))
			}
		}()
	}

	var player sound.Player = sound.Silent{}
	if cfg.Sound {
		sp, err := sound.New(cfg.SampleRate)
		if err != nil {
			log.Warn("sound disabled", logger.Error(err))
		} else {
			defer sp.Close()
			player = sp
		}
	}
	sound.Attach(session, player)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()

	session.Start()
	loop(ctx, screen, session, time.Second/time.Duration(cfg.TickRate))

	log.Info("bye", "score", session.View().Score)
	return nil
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithOutput(out),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("service", "breakout")),
	), nil
}

type poller interface {
	PollEvent() tcell.Event
}

// pollEvents forwards input to out until the screen is finalised or done is closed.
func pollEvents(p poller, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := p.PollEvent()
		if ev == nil {
			return
		}

		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// loop drives the session from one goroutine: input events as they arrive,
// Update and Draw on every tick.
func loop(ctx context.Context, screen tcell.Screen, session *game.Session, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go pollEvents(screen, events, done)

	var render tui.Renderer
	last := time.Now()

	for !session.Done() {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return
				}
				if cmd, ok := tui.KeyCommand(ev); ok {
					session.Handle(cmd)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			session.Update(now.Sub(last))
			last = now
			render.Draw(screen, session.View())
		}
	}
}
