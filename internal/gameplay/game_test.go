package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjiamnocna/gomaze/internal/actors"
	"github.com/sjiamnocna/gomaze/internal/maps"
	"github.com/sjiamnocna/gomaze/internal/mazegen"
)

func sevenBySeven(t *testing.T) *maps.Grid {
	t.Helper()
	g, err := maps.NewGrid(7, 7)
	require.NoError(t, err)
	mazegen.BuildBoundary(g)
	mazegen.BuildSkeleton(g)
	require.True(t, mazegen.PlaceGoal(g))
	return g
}

func parse(t *testing.T, lines ...string) *maps.Grid {
	t.Helper()
	g, err := maps.Parse(lines)
	require.NoError(t, err)
	return g
}

func assertSingleOccupant(t *testing.T, game *Game) {
	t.Helper()
	count := 0
	grid := game.Grid()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.TileAt(x, y).Occupied {
				count++
				assert.Equal(t, game.Player(), maps.Position{X: x, Y: y})
			}
		}
	}
	assert.Equal(t, 1, count, "exactly one occupied tile")
}

func TestNewGameOccupiesStart(t *testing.T) {
	game, err := NewGame(sevenBySeven(t), DefaultStart)
	require.NoError(t, err)

	assert.Equal(t, PhasePlaying, game.Phase())
	assert.False(t, game.Won())
	assert.Zero(t, game.Steps())
	assert.Equal(t, DefaultStart, game.Player())
	assertSingleOccupant(t, game)
}

func TestNewGameClearsStaleOccupancy(t *testing.T) {
	grid := parse(t,
		"#####",
		"# @ #",
		"#####",
	)

	game, err := NewGame(grid, DefaultStart)
	require.NoError(t, err)
	assert.False(t, grid.TileAt(2, 1).Occupied)
	assertSingleOccupant(t, game)
}

func TestNewGameInvalidStart(t *testing.T) {
	grid := sevenBySeven(t)

	tests := []struct {
		name  string
		start maps.Position
	}{
		{"boundary", maps.Position{X: 0, Y: 1}},
		{"outside", maps.Position{X: 9, Y: 9}},
		{"wall", maps.Position{X: 2, Y: 2}},
		{"goal", maps.Position{X: 5, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := NewGame(grid, tt.start)
			assert.ErrorIs(t, err, ErrInvalidStart)
			assert.Nil(t, game)
		})
	}

	_, err := NewGame(nil, DefaultStart)
	assert.ErrorIs(t, err, ErrInvalidStart)
}

func TestApplyMoveIntoWallIsBlocked(t *testing.T) {
	grid := sevenBySeven(t)
	game, err := NewGame(grid, DefaultStart)
	require.NoError(t, err)
	before := grid.String()

	for _, d := range []actors.Direction{actors.Left, actors.Up, actors.Right, actors.Down} {
		assert.Equal(t, Blocked, game.ApplyMove(d), d.String())
		assert.Equal(t, DefaultStart, game.Player())
		assert.Equal(t, before, grid.String())
	}
	assert.Zero(t, game.Steps())
}

func TestApplyMoveReachesGoal(t *testing.T) {
	game, err := NewGame(sevenBySeven(t), maps.Position{X: 4, Y: 4})
	require.NoError(t, err)

	assert.Equal(t, Moved, game.ApplyMove(actors.Right))
	assert.Equal(t, maps.Position{X: 5, Y: 4}, game.Player())
	assert.False(t, game.Won())
	assertSingleOccupant(t, game)

	assert.Equal(t, Moved, game.ApplyMove(actors.Down))
	assert.Equal(t, maps.Position{X: 5, Y: 5}, game.Player())
	assert.True(t, game.Won())
	assert.Equal(t, 2, game.Steps())
	assertSingleOccupant(t, game)

	// stepping off the goal keeps the win
	assert.Equal(t, Moved, game.ApplyMove(actors.Left))
	assert.True(t, game.Won())
}

func TestHandleWalksToGoal(t *testing.T) {
	grid := parse(t,
		"#####",
		"#  ##",
		"## G#",
		"#####",
	)
	game, err := NewGame(grid, DefaultStart)
	require.NoError(t, err)

	steps := []struct {
		in    Intent
		event Event
		phase Phase
	}{
		{IntentNone, EventNone, PhasePlaying},
		{IntentMoveUp, EventBlocked, PhasePlaying},
		{IntentMoveRight, EventMoved, PhasePlaying},
		{IntentMoveDown, EventMoved, PhasePlaying},
		{IntentMoveRight, EventWon, PhaseWon},
		{IntentMoveLeft, EventNone, PhaseWon},
		{IntentNone, EventNone, PhaseWon},
		{IntentQuit, EventQuit, PhaseExiting},
	}

	for i, step := range steps {
		assert.Equal(t, step.event, game.Handle(step.in), "step %d (%s)", i, step.in)
		assert.Equal(t, step.phase, game.Phase(), "step %d (%s)", i, step.in)
		assertSingleOccupant(t, game)
	}

	assert.True(t, game.Won())
	assert.Equal(t, maps.Position{X: 3, Y: 2}, game.Player())
	assert.Equal(t, 3, game.Steps())
}

func TestHandleQuitWhilePlaying(t *testing.T) {
	game, err := NewGame(sevenBySeven(t), DefaultStart)
	require.NoError(t, err)

	assert.Equal(t, EventQuit, game.Handle(IntentQuit))
	assert.Equal(t, PhaseExiting, game.Phase())
	assert.False(t, game.Won())
	assert.Equal(t, EventQuit, game.Handle(IntentQuit))
	assert.Equal(t, EventNone, game.Handle(IntentMoveRight))
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	grid, err := maps.NewGrid(31, 15)
	require.NoError(t, err)
	mazegen.Generate(grid, mazegen.Options{Goal: true})

	game, err := NewGame(grid, DefaultStart)
	require.NoError(t, err)

	intents := []Intent{IntentMoveRight, IntentMoveDown, IntentMoveDown, IntentMoveLeft, IntentMoveUp, IntentMoveRight}
	wonOnce := false
	for i := 0; i < 500; i++ {
		game.Handle(intents[i%len(intents)])

		p := game.Player()
		require.True(t, p.X >= 1 && p.X <= grid.Width-2, "x in interior")
		require.True(t, p.Y >= 1 && p.Y <= grid.Height-2, "y in interior")
		require.NotEqual(t, maps.Wall, grid.TileAt(p.X, p.Y).Kind)
		if wonOnce {
			require.True(t, game.Won(), "won never resets")
		}
		wonOnce = game.Won()
	}
	assertSingleOccupant(t, game)
}

func TestIntentDirection(t *testing.T) {
	tests := []struct {
		in  Intent
		dir actors.Direction
		ok  bool
	}{
		{IntentMoveUp, actors.Up, true},
		{IntentMoveDown, actors.Down, true},
		{IntentMoveLeft, actors.Left, true},
		{IntentMoveRight, actors.Right, true},
		{IntentQuit, 0, false},
		{IntentNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			dir, ok := tt.in.Direction()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.dir, dir)
			}
		})
	}
}
