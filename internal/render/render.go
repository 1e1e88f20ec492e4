// Package render turns a grid into paint commands. It keeps no state.
package render

import "github.com/sjiamnocna/gomaze/internal/maps"

type VisualState int

const (
	WallColor VisualState = iota
	PassageColor
	GoalColor
	PlayerColor
)

func (v VisualState) String() string {
	switch v {
	case WallColor:
		return "wall"
	case PassageColor:
		return "passage"
	case GoalColor:
		return "goal"
	case PlayerColor:
		return "player"
	default:
		return "unknown"
	}
}

// Paint is one cell draw.
type Paint struct {
	X     int
	Y     int
	State VisualState
}

// StateOf picks the visual state of a tile; the player hides the tile kind.
func StateOf(t maps.Tile) VisualState {
	if t.Occupied {
		return PlayerColor
	}
	switch t.Kind {
	case maps.Wall:
		return WallColor
	case maps.Goal:
		return GoalColor
	default:
		return PassageColor
	}
}

// Render emits one paint per cell in row-major order.
func Render(g *maps.Grid) []Paint {
	paints := make([]Paint, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			paints = append(paints, Paint{X: x, Y: y, State: StateOf(g.Tiles[y][x])})
		}
	}
	return paints
}
