package actors

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Player holds the grid position of the single player.
type Player struct {
	X int
	Y int
}
