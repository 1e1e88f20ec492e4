// Package mazegen lays out walls, passages and the goal on a maps.Grid.
//
// The layout is a lattice of passage cells at odd coordinates separated by
// single-width walls. A carving pass then opens, for each lattice cell, either
// the wall to its right or the wall below it. The carving is order dependent
// and does not guarantee a spanning tree: some lattice cells can stay cut off.
package mazegen

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/sjiamnocna/gomaze/internal/maps"
)

// minGoalSize keeps the goal and its forced neighbours off the outer ring and
// away from the start cell.
const minGoalSize = 4

// Coin decides the carve direction of one lattice cell: true carves right,
// false carves down.
type Coin interface {
	Flip() bool
}

type randomCoin struct {
	rng *rand.Rand
}

// NewRandomCoin returns a fair coin seeded from the wall clock.
func NewRandomCoin() Coin {
	return &randomCoin{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
}

func (c *randomCoin) Flip() bool {
	return c.rng.Intn(2) == 1
}

type Options struct {
	Goal bool
	Coin Coin // nil means NewRandomCoin
}

// Generate runs the boundary, skeleton and carving passes and, when
// opts.Goal is set, places the goal. It reports whether a goal was placed.
func Generate(g *maps.Grid, opts Options) bool {
	coin := opts.Coin
	if coin == nil {
		coin = NewRandomCoin()
	}

	BuildBoundary(g)
	BuildSkeleton(g)
	Carve(g, coin)

	if !opts.Goal {
		return false
	}
	return PlaceGoal(g)
}

func BuildBoundary(g *maps.Grid) {
	for x := 0; x < g.Width; x++ {
		g.SetKind(x, 0, maps.Wall)
		g.SetKind(x, g.Height-1, maps.Wall)
	}
	for y := 0; y < g.Height; y++ {
		g.SetKind(0, y, maps.Wall)
		g.SetKind(g.Width-1, y, maps.Wall)
	}
}

// BuildSkeleton walls every interior cell with an even coordinate and opens
// every lattice cell.
func BuildSkeleton(g *maps.Grid) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if IsLatticeCell(x, y) {
				g.SetKind(x, y, maps.Passage)
			} else {
				g.SetKind(x, y, maps.Wall)
			}
		}
	}
}

// Carve flips one coin per lattice cell in row-major order. A carve that
// would open the outer ring is dropped.
func Carve(g *maps.Grid, coin Coin) {
	for y := 1; y < g.Height-1; y += 2 {
		for x := 1; x < g.Width-1; x += 2 {
			tx, ty := x, y+1
			if coin.Flip() {
				tx, ty = x+1, y
			}
			if g.OnBoundary(tx, ty) {
				continue
			}
			g.SetKind(tx, ty, maps.Passage)
		}
	}
}

// PlaceGoal marks the bottom-right interior cell as the goal and opens its
// three neighbours towards the top-left so the goal is always locally
// reachable. Grids smaller than minGoalSize get no goal.
func PlaceGoal(g *maps.Grid) bool {
	if g.Width < minGoalSize || g.Height < minGoalSize {
		return false
	}

	gx, gy := GoalPosition(g)
	g.SetKind(gx, gy, maps.Goal)
	g.SetKind(gx-1, gy, maps.Passage)
	g.SetKind(gx, gy-1, maps.Passage)
	g.SetKind(gx-1, gy-1, maps.Passage)
	return true
}

func GoalPosition(g *maps.Grid) (int, int) {
	return g.Width - 2, g.Height - 2
}

func IsLatticeCell(x, y int) bool {
	return x%2 == 1 && y%2 == 1
}
