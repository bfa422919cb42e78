// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/enetx/breakout/fsm"
	"github.com/enetx/breakout/internal/game"
)

// Cue is a sound effect.
type Cue int

const (
	CueBounce Cue = iota
	CueBrick
	CueDeath
)

func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueBrick:
		return "brick"
	case CueDeath:
		return "death"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(Cue)
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(Cue) {}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	closed bool
}

// New initialises the audio device at sampleRate Hz.
// It fails when no device is available; callers usually fall back to Silent.
func New(sampleRate int) (*Speaker, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialise speaker: %w", err)
	}

	s := &Speaker{rate: rate, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)

	return s, nil
}

// Play mixes the cue into the running output.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	st, err := Streamer(s.rate, c)
	if err != nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Tone returns a sine wave of freq Hz lasting dur.
func Tone(rate beep.SampleRate, freq float64, dur time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %gHz: %w", freq, err)
	}

	return beep.Take(rate.N(dur), sine), nil
}

// Streamer builds the sound of c.
func Streamer(rate beep.SampleRate, c Cue) (beep.Streamer, error) {
	var (
		st  beep.Streamer
		err error
	)

	switch c {
	case CueBounce:
		st, err = Tone(rate, 440, 40*time.Millisecond)
	case CueBrick:
		st, err = Tone(rate, 880, 60*time.Millisecond)
	case CueDeath:
		var high, low beep.Streamer
		if high, err = Tone(rate, 330, 120*time.Millisecond); err != nil {
			return nil, err
		}
		if low, err = Tone(rate, 220, 200*time.Millisecond); err != nil {
			return nil, err
		}
		st = beep.Seq(high, low)
	default:
		return nil, fmt.Errorf("unknown cue %v", c)
	}

	if err != nil {
		return nil, err
	}

	return &effects.Volume{Streamer: st, Base: 2, Volume: -2}, nil
}

// CueFor returns the cue played for an event kind.
func CueFor(kind game.EventKind) (Cue, bool) {
	switch kind {
	case game.BallBounced:
		return CueBounce, true
	case game.BrickBroken:
		return CueBrick, true
	case game.PlayerDied:
		return CueDeath, true
	default:
		return 0, false
	}
}

// Source publishes game events. *game.Session satisfies it.
type Source interface {
	On(fn func(game.Event)) fsm.Subscription
}

// Attach plays a cue on p for every event of src that has one.
func Attach(src Source, p Player) fsm.Subscription {
	return src.On(func(e game.Event) {
		if c, ok := CueFor(e.Kind); ok {
			p.Play(c)
		}
	})
}
