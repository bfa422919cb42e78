package game

import "fmt"

// AppState is a state of the application machine.
type AppState int

const (
	AppInitialize AppState = iota
	AppMainMenu
	AppSetupNewGame
	AppGame
	AppGameOver
	AppQuit
)

var appStateNames = [...]string{
	AppInitialize:   "Initialize",
	AppMainMenu:     "MainMenu",
	AppSetupNewGame: "SetupNewGame",
	AppGame:         "Game",
	AppGameOver:     "GameOver",
	AppQuit:         "Quit",
}

func (s AppState) String() string {
	if s < 0 || int(s) >= len(appStateNames) {
		return fmt.Sprintf("AppState(%d)", int(s))
	}
	return appStateNames[s]
}

// ParseAppState returns the AppState whose String form is name.
func ParseAppState(name string) (AppState, error) {
	for i, n := range appStateNames {
		if n == name {
			return AppState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown app state %q", name)
}

// RoundState is a state of the round machine.
type RoundState int

const (
	RoundIdle RoundState = iota
	RoundPlaying
	RoundDead
	RoundNextStage
)

var roundStateNames = [...]string{
	RoundIdle:      "Idle",
	RoundPlaying:   "Playing",
	RoundDead:      "Dead",
	RoundNextStage: "NextStage",
}

func (s RoundState) String() string {
	if s < 0 || int(s) >= len(roundStateNames) {
		return fmt.Sprintf("RoundState(%d)", int(s))
	}
	return roundStateNames[s]
}

// ParseRoundState returns the RoundState whose String form is name.
func ParseRoundState(name string) (RoundState, error) {
	for i, n := range roundStateNames {
		if n == name {
			return RoundState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown round state %q", name)
}
