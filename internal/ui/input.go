package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sjiamnocna/gomaze/internal/gameplay"
)

// DecodeEvent maps a terminal event to an intent. Only key presses count.
func DecodeEvent(ev tcell.Event) gameplay.Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return gameplay.IntentNone
	}
	return DecodeKey(key)
}

func DecodeKey(ev *tcell.EventKey) gameplay.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return gameplay.IntentMoveUp
	case tcell.KeyDown:
		return gameplay.IntentMoveDown
	case tcell.KeyLeft:
		return gameplay.IntentMoveLeft
	case tcell.KeyRight:
		return gameplay.IntentMoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return gameplay.IntentQuit
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return gameplay.IntentNone
}

func decodeRune(r rune) gameplay.Intent {
	switch r {
	case 'w', 'W':
		return gameplay.IntentMoveUp
	case 's', 'S':
		return gameplay.IntentMoveDown
	case 'a', 'A':
		return gameplay.IntentMoveLeft
	case 'd', 'D':
		return gameplay.IntentMoveRight
	case 'q', 'Q', 'c':
		return gameplay.IntentQuit
	}
	return gameplay.IntentNone
}
