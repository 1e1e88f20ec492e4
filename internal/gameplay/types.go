package gameplay

import (
	"github.com/sjiamnocna/gomaze/internal/actors"
	"github.com/sjiamnocna/gomaze/internal/maps"
)

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

type MoveResult int

const (
	Blocked MoveResult = iota
	Moved
)

func (r MoveResult) String() string {
	if r == Moved {
		return "moved"
	}
	return "blocked"
}

// Intent is one decoded key press.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps a move intent to its direction.
func (i Intent) Direction() (actors.Direction, bool) {
	switch i {
	case IntentMoveUp:
		return actors.Up, true
	case IntentMoveDown:
		return actors.Down, true
	case IntentMoveLeft:
		return actors.Left, true
	case IntentMoveRight:
		return actors.Right, true
	default:
		return 0, false
	}
}

// Event tells the loop what a handled intent did.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventBlocked
	EventWon
	EventQuit
)

// Game is the only owner allowed to mutate the grid's occupancy and the player.
type Game struct {
	grid   *maps.Grid
	player *actors.Player
	phase  Phase
	won    bool
	steps  int
}
