package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// centerInBand returns the left column that centers text of the given
// display width on a screen width columns wide. Text wider than the screen
// starts at column 0.
func centerInBand(width, textWidth int) int {
	if textWidth >= width {
		return 0
	}
	return (width - textWidth) / 2
}

// drawCentered writes text centered on row y, clipped to the screen.
func drawCentered(s tcell.Screen, y int, text string, style tcell.Style) {
	width, height := s.Size()
	if y < 0 || y >= height {
		return
	}

	x := centerInBand(width, runewidth.StringWidth(text))
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func fill(s tcell.Screen, style tcell.Style) {
	width, height := s.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.SetContent(x, y, cellRune, nil, style)
		}
	}
}
