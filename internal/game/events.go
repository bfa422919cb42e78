package game

import "fmt"

// EventKind identifies a game event.
type EventKind int

const (
	SettingUpNewGame EventKind = iota
	GameStarted
	StartPlaying
	PlayerDied
	PlayerRespawn
	NextStage
	GameIsOver
	BackToMainMenu
	BrickBroken
	BallBounced
)

var eventNames = [...]string{
	SettingUpNewGame: "SettingUpNewGame",
	GameStarted:      "GameStarted",
	StartPlaying:     "StartPlaying",
	PlayerDied:       "PlayerDied",
	PlayerRespawn:    "PlayerRespawn",
	NextStage:        "NextStage",
	GameIsOver:       "GameIsOver",
	BackToMainMenu:   "BackToMainMenu",
	BrickBroken:      "BrickBroken",
	BallBounced:      "BallBounced",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// Event is published on the session bus.
// Brick and Points are set for BrickBroken only.
type Event struct {
	Kind   EventKind
	Brick  BrickType
	Points int
}
