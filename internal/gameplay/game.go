package gameplay

import (
	"errors"
	"fmt"

	"github.com/sjiamnocna/gomaze/internal/actors"
	"github.com/sjiamnocna/gomaze/internal/maps"
)

var ErrInvalidStart = errors.New("invalid player start")

// DefaultStart is the top-left lattice cell.
var DefaultStart = maps.Position{X: 1, Y: 1}

// NewGame places the player on start. The start must be an interior
// passage tile of a generated grid. Any stale occupancy is cleared.
func NewGame(grid *maps.Grid, start maps.Position) (*Game, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: no grid", ErrInvalidStart)
	}
	if start.X < 1 || start.Y < 1 || start.X > grid.Width-2 || start.Y > grid.Height-2 {
		return nil, fmt.Errorf("%w: (%d,%d) is outside the interior of %dx%d", ErrInvalidStart, start.X, start.Y, grid.Width, grid.Height)
	}
	switch grid.TileAt(start.X, start.Y).Kind {
	case maps.Wall:
		return nil, fmt.Errorf("%w: (%d,%d) is a wall", ErrInvalidStart, start.X, start.Y)
	case maps.Goal:
		return nil, fmt.Errorf("%w: (%d,%d) is the goal", ErrInvalidStart, start.X, start.Y)
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			grid.SetOccupied(x, y, false)
		}
	}
	grid.SetOccupied(start.X, start.Y, true)

	return &Game{
		grid:   grid,
		player: actors.NewPlayer(start.X, start.Y),
		phase:  PhasePlaying,
	}, nil
}

func (g *Game) Grid() *maps.Grid {
	return g.grid
}

func (g *Game) Player() maps.Position {
	return maps.Position{X: g.player.X, Y: g.player.Y}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Won() bool {
	return g.won
}

// Steps counts successful moves.
func (g *Game) Steps() int {
	return g.steps
}

// ApplyMove steps the player one tile. Walls are the only collision; the
// outer ring is always wall so the candidate never leaves the grid.
func (g *Game) ApplyMove(d actors.Direction) MoveResult {
	nx, ny := g.player.Next(d)
	target := g.grid.TileAt(nx, ny)
	if target.Kind == maps.Wall {
		return Blocked
	}

	g.grid.SetOccupied(g.player.X, g.player.Y, false)
	g.grid.SetOccupied(nx, ny, true)
	g.player.MoveTo(nx, ny)
	g.steps++

	if target.Kind == maps.Goal {
		g.won = true
	}
	return Moved
}

// Handle runs one intent through the session state machine.
func (g *Game) Handle(in Intent) Event {
	if in == IntentQuit {
		g.phase = PhaseExiting
		return EventQuit
	}
	if g.phase != PhasePlaying {
		return EventNone
	}

	dir, ok := in.Direction()
	if !ok {
		return EventNone
	}

	if g.ApplyMove(dir) == Blocked {
		return EventBlocked
	}
	if g.won {
		g.phase = PhaseWon
		return EventWon
	}
	return EventMoved
}
