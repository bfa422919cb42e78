package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/breakout/internal/config"
	"github.com/enetx/breakout/internal/game"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, "breakout.log", cfg.LogFile)
	assert.Empty(t, cfg.WatchAddr)
	assert.True(t, cfg.Sound)
	assert.Equal(t, game.DefaultConfig(), cfg.Game)
}

func TestConfigNestedGame(t *testing.T) {
	t.Setenv("BREAKOUT_LIVES", "1")
	t.Setenv("BREAKOUT_WATCH_ADDR", "127.0.0.1:7070")

	var cfg Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 1, cfg.Game.Lives)
	assert.Equal(t, "127.0.0.1:7070", cfg.WatchAddr)
}

func TestPrintDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printDOT(&buf, game.DefaultConfig(), "app"))

	out := buf.String()
	assert.Contains(t, out, `"Initialize" [label="Initialize", fillcolor="#90ee90", shape=doublecircle];`)
	assert.Contains(t, out, `"Quit" [label="Quit", fillcolor="#d3d3d3", shape=doublecircle];`)
	assert.Contains(t, out, `"MainMenu" -> "SetupNewGame" [label=" announce\nafter "];`)

	buf.Reset()
	require.NoError(t, printDOT(&buf, game.DefaultConfig(), "round"))
	assert.Contains(t, buf.String(), `"NextStage" -> "Idle" [label=" before "];`)

	assert.Error(t, printDOT(&buf, game.DefaultConfig(), "paddle"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Config{LogLevel: "debug", LogFormat: "json"}
	log, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	log.Debug("state changed", "app", "MainMenu")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "breakout", entry["service"])
	assert.Equal(t, "MainMenu", entry["app"])

	_, err = newLogger(Config{LogLevel: "loud", LogFormat: "text"}, &buf)
	assert.Error(t, err)

	_, err = newLogger(Config{LogLevel: "info", LogFormat: "xml"}, &buf)
	assert.Error(t, err)
}

type endlessKeys struct{}

func (endlessKeys) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	out := make(chan tcell.Event, 1)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		pollEvents(endlessKeys{}, out, done)
		close(finished)
	}()

	<-out
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents kept blocking after done was closed")
	}
}

type closedScreen struct{}

func (closedScreen) PollEvent() tcell.Event { return nil }

func TestPollEventsStopsOnFinalisedScreen(t *testing.T) {
	finished := make(chan struct{})

	go func() {
		pollEvents(closedScreen{}, make(chan tcell.Event), make(chan struct{}))
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents did not return for a nil event")
	}
}
