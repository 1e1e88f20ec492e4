package main

import (
	"fmt"

	"github.com/sjiamnocna/gomaze/internal/maps"
	"github.com/sjiamnocna/gomaze/internal/mazegen"
)

// Report summarizes how much of a layout is reachable from the start cell.
type Report struct {
	Lattice          int // interior cells with odd coordinates
	ReachableLattice int
	Open             int // non-wall tiles
	ReachableOpen    int
	HasGoal          bool
	GoalReachable    bool
}

func (r Report) String() string {
	goal := "none"
	if r.HasGoal {
		goal = "unreachable"
		if r.GoalReachable {
			goal = "reachable"
		}
	}
	return fmt.Sprintf("lattice %d/%d reachable, open %d/%d reachable, goal %s",
		r.ReachableLattice, r.Lattice, r.ReachableOpen, r.Open, goal)
}

// Analyze flood-fills grid from (1,1).
func Analyze(grid *maps.Grid) Report {
	reach := maps.Reachable(grid, 1, 1)

	var r Report
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			if mazegen.IsLatticeCell(x, y) {
				r.Lattice++
				if reach[y][x] {
					r.ReachableLattice++
				}
			}

			kind := grid.TileAt(x, y).Kind
			if kind == maps.Wall {
				continue
			}
			r.Open++
			if reach[y][x] {
				r.ReachableOpen++
			}
			if kind == maps.Goal {
				r.HasGoal = true
				r.GoalReachable = r.GoalReachable || reach[y][x]
			}
		}
	}
	return r
}
