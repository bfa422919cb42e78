package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/enetx/breakout/internal/game"
)

// KeyCommand maps a key press to a game command.
// Keys without a meaning in the game report false.
func KeyCommand(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return game.CmdPlay, true
	case tcell.KeyEscape:
		return game.CmdExit, true
	case tcell.KeyLeft:
		return game.CmdLeft, true
	case tcell.KeyRight:
		return game.CmdRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.CmdLaunch, true
		case 'q', 'Q':
			return game.CmdQuit, true
		case 'h', 'a':
			return game.CmdLeft, true
		case 'l', 'd':
			return game.CmdRight, true
		}
	}

	return game.CmdNone, false
}
