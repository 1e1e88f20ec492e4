package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sjiamnocna/gomaze/internal/render"
)

const (
	defaultPollInterval = 17 * time.Millisecond
	eventBuffer         = 32
	cellRune            = ' '
)

var (
	wallStyle    = tcell.StyleDefault.Background(tcell.ColorWhite)
	passageStyle = tcell.StyleDefault.Background(tcell.ColorReset)
	goalStyle    = tcell.StyleDefault.Background(tcell.ColorGreen)
	playerStyle  = tcell.StyleDefault.Background(tcell.ColorRed)

	victoryStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen)
)

func styleFor(v render.VisualState) tcell.Style {
	switch v {
	case render.WallColor:
		return wallStyle
	case render.GoalColor:
		return goalStyle
	case render.PlayerColor:
		return playerStyle
	default:
		return passageStyle
	}
}
