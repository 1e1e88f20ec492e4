package maps

type TileKind int

const (
	Wall TileKind = iota
	Passage
	Goal
)

func (k TileKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	case Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Tile is a single grid cell. Occupied marks the tile holding the player.
type Tile struct {
	Kind     TileKind
	Occupied bool
}

// Grid is indexed Tiles[y][x]. Its size never changes after NewGrid.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

type Position struct {
	X int
	Y int
}
