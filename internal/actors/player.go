package actors

func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y}
}

// Next returns the coordinate one step away in d. It does not move the player.
func (p *Player) Next(d Direction) (int, int) {
	dx, dy := d.Delta()
	return p.X + dx, p.Y + dy
}

func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Delta is the screen-space offset of one step: Up decreases y.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
