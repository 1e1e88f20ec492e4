package ui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sjiamnocna/gomaze/internal/gameplay"
	"github.com/sjiamnocna/gomaze/internal/render"
)

var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Terminal is a tcell screen held in raw, alternate-screen mode for the
// length of one game session. Close must run once the session ends.
type Terminal struct {
	screen    tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// OpenTerminal takes over the controlling terminal.
func OpenTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	return NewTerminal(screen)
}

// NewTerminal initialises screen, hides the cursor and starts pumping its
// events. The screen must not have been initialised yet.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Close stops the event pump and restores the terminal. Safe to call more
// than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// PollIntent waits up to timeout for one event. A closed event stream
// means the screen is gone and decodes as quit.
func (t *Terminal) PollIntent(timeout time.Duration) gameplay.Intent {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return gameplay.IntentQuit
		}
		return DecodeEvent(ev)
	case <-timer.C:
		return gameplay.IntentNone
	}
}

// Draw paints a full frame and shows it in one flush.
func (t *Terminal) Draw(paints []render.Paint) {
	for _, p := range paints {
		t.screen.SetContent(p.X, p.Y, cellRune, nil, styleFor(p.State))
	}
	t.screen.Show()
}

func (t *Terminal) ShowVictory(steps int) {
	_, height := t.screen.Size()
	fill(t.screen, victoryStyle)
	drawCentered(t.screen, height/2-1, "You reached the goal!", victoryStyle)
	drawCentered(t.screen, height/2, fmt.Sprintf("%d steps", steps), hintStyle)
	drawCentered(t.screen, height/2+2, "Press q or Esc to quit", hintStyle)
	t.screen.Show()
}
