// Package tui draws a game.View on a tcell screen and decodes key presses.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/enetx/breakout/internal/game"
)

const (
	originX = 1
	originY = 1
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePaddle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)

	brickStyles = map[game.BrickType]tcell.Style{
		game.Red:   tcell.StyleDefault.Foreground(tcell.ColorRed),
		game.Green: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		game.Blue:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
)

// Banner texts.
const (
	TextTitle          = "B R E A K O U T"
	TextMenu           = "[Enter] play   [q] quit"
	TextStart          = "Press SPACE to launch"
	TextRespawn        = "Ball lost! Press SPACE to respawn"
	TextNextStage      = "Stage cleared!"
	TextGameOver       = "GAME OVER"
	TextGameOverAction = "Press ESC for the main menu"
)

// Renderer draws views. The zero value is ready to use.
type Renderer struct{}

// Draw clears the screen, paints v and shows the result.
func (r Renderer) Draw(screen tcell.Screen, v game.View) {
	screen.Clear()

	r.drawBorder(screen, v)

	switch v.App {
	case game.AppMainMenu, game.AppInitialize:
		r.center(screen, v, v.Height/2-1, TextTitle)
		r.center(screen, v, v.Height/2+1, TextMenu)
	case game.AppGame, game.AppGameOver:
		r.drawField(screen, v)
		r.drawBanners(screen, v)
	}

	r.drawHUD(screen, v)
	screen.Show()
}

func (r Renderer) drawBorder(screen tcell.Screen, v game.View) {
	left, right := originX-1, originX+v.Width
	top, bottom := originY-1, originY+v.Height

	for x := left; x <= right; x++ {
		screen.SetContent(x, top, '─', nil, styleBorder)
		screen.SetContent(x, bottom, '─', nil, styleBorder)
	}

	for y := top; y <= bottom; y++ {
		screen.SetContent(left, y, '│', nil, styleBorder)
		screen.SetContent(right, y, '│', nil, styleBorder)
	}

	screen.SetContent(left, top, '┌', nil, styleBorder)
	screen.SetContent(right, top, '┐', nil, styleBorder)
	screen.SetContent(left, bottom, '└', nil, styleBorder)
	screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r Renderer) drawField(screen tcell.Screen, v game.View) {
	for row, bricks := range v.Bricks {
		y := originY + v.BrickTop + row
		for col, b := range bricks {
			if b == game.NoBrick {
				continue
			}

			style := brickStyles[b]
			x := originX + col*v.BrickWidth
			for i := range v.BrickWidth {
				ch := '█'
				if i == v.BrickWidth-1 && v.BrickWidth > 1 {
					ch = '▌'
				}
				screen.SetContent(x+i, y, ch, nil, style)
			}
		}
	}

	for i := range v.PaddleWidth {
		screen.SetContent(originX+v.PaddleX+i, originY+v.PaddleRow, '▀', nil, stylePaddle)
	}

	if v.BallVisible {
		screen.SetContent(originX+v.BallX, originY+v.BallY, '●', nil, styleBall)
	}
}

func (r Renderer) drawBanners(screen tcell.Screen, v game.View) {
	row := v.Height/2 + 2
	m := v.Messages

	for _, b := range []struct {
		on   bool
		text string
	}{
		{m.Start, TextStart},
		{m.Respawn, TextRespawn},
		{m.NextStage, TextNextStage},
		{m.GameOver, TextGameOver},
		{m.GameOverAction, TextGameOverAction},
	} {
		if b.on {
			r.center(screen, v, row, b.text)
			row++
		}
	}
}

func (r Renderer) drawHUD(screen tcell.Screen, v game.View) {
	y := originY + v.Height + 1
	hud := fmt.Sprintf("Score: %d   Lives: %d   Stage: %d", v.Score, v.Lives, v.Stage)
	text(screen, originX, y, hud, styleHUD)

	state := fmt.Sprintf("%s/%s", v.App, v.Round)
	text(screen, originX+v.Width-len(state), y, state, styleBorder)
}

func (r Renderer) center(screen tcell.Screen, v game.View, row int, s string) {
	n := len([]rune(s))
	x := originX + max(0, (v.Width-n)/2)
	text(screen, x, originY+row, s, styleBanner)
}

func text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Size returns the screen area needed to draw v, border and HUD included.
func Size(v game.View) (width, height int) {
	return v.Width + 2, v.Height + 3
}
