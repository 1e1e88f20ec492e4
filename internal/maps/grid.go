package maps

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// MinSize is the smallest width or height that still has an interior cell.
const MinSize = 3

var (
	ErrGridTooSmall = errors.New("grid is too small")
	ErrEmptyLayout  = errors.New("layout has no rows")
)

const (
	wallRune     = '#'
	passageRune  = ' '
	goalRune     = 'G'
	occupiedRune = '@'
)

// NewGrid returns a width x height grid filled with unoccupied passages.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, width, height, MinSize, MinSize)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: Passage}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}, nil
}

// TileAt panics when x, y is outside the grid.
func (g *Grid) TileAt(x, y int) Tile {
	return g.Tiles[y][x]
}

func (g *Grid) SetKind(x, y int, kind TileKind) {
	g.Tiles[y][x].Kind = kind
}

func (g *Grid) SetOccupied(x, y int, occupied bool) {
	g.Tiles[y][x].Occupied = occupied
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// OnBoundary reports whether x, y lies on the outer ring.
func (g *Grid) OnBoundary(x, y int) bool {
	return x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
}

// IsWall treats anything outside the grid as wall.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Tiles[y][x].Kind == Wall
}

func (g *Grid) Count(kind TileKind) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x].Kind == kind {
				count++
			}
		}
	}
	return count
}

// Occupant returns the occupied tile, if any.
func (g *Grid) Occupant() (Position, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x].Occupied {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(tileRune(g.Tiles[y][x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func tileRune(t Tile) rune {
	if t.Occupied {
		return occupiedRune
	}
	switch t.Kind {
	case Wall:
		return wallRune
	case Goal:
		return goalRune
	default:
		return passageRune
	}
}

// Parse reads the text form produced by String. '.' is accepted for a
// passage so layouts survive editors that strip trailing spaces.
func Parse(lines []string) (*Grid, error) {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	width := len([]rune(lines[0]))
	g, err := NewGrid(width, len(lines))
	if err != nil {
		return nil, err
	}

	occupied := false
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case wallRune:
				g.SetKind(x, y, Wall)
			case passageRune, '.':
				g.SetKind(x, y, Passage)
			case goalRune:
				g.SetKind(x, y, Goal)
			case occupiedRune:
				if occupied {
					return nil, fmt.Errorf("second player marker at (%d,%d)", x, y)
				}
				occupied = true
				g.SetKind(x, y, Passage)
				g.SetOccupied(x, y, true)
			default:
				return nil, fmt.Errorf("unknown tile %q at (%d,%d)", ch, x, y)
			}
		}
	}

	return g, nil
}

func Load(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	g, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return g, nil
}

// Reachable flood-fills non-wall tiles from x, y.
func Reachable(g *Grid, startX, startY int) [][]bool {
	reachable := make([][]bool, g.Height)
	for i := range reachable {
		reachable[i] = make([]bool, g.Width)
	}
	if g.IsWall(startX, startY) {
		return reachable
	}

	queue := []Position{{X: startX, Y: startY}}
	reachable[startY][startX] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		neighbors := [4]Position{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}}
		for _, n := range neighbors {
			if g.IsWall(n.X, n.Y) || reachable[n.Y][n.X] {
				continue
			}
			reachable[n.Y][n.X] = true
			queue = append(queue, n)
		}
	}

	return reachable
}
