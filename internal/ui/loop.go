package ui

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sjiamnocna/gomaze/internal/config"
	"github.com/sjiamnocna/gomaze/internal/gameplay"
	"github.com/sjiamnocna/gomaze/internal/maps"
	"github.com/sjiamnocna/gomaze/internal/mazegen"
	"github.com/sjiamnocna/gomaze/internal/render"
)

// Screen is what the game loop needs from the terminal.
type Screen interface {
	PollIntent(timeout time.Duration) gameplay.Intent
	Draw(paints []render.Paint)
	ShowVictory(steps int)
}

// RunTerminalGame plays one session on the controlling terminal. The
// terminal is restored on every return path, panics included.
func RunTerminalGame(cfg config.Config, logger *log.Logger) error {
	term, err := OpenTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	entry := logger.WithField("session", uuid.NewString())
	return Play(term, cfg, entry)
}

// Play builds a maze sized to term and runs the loop until quit.
func Play(term *Terminal, cfg config.Config, logger log.FieldLogger) error {
	width, height := term.Size()
	game, err := NewMazeGame(width, height, mazegen.Options{Goal: cfg.Goal})
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"width":  width,
		"height": height,
		"goal":   cfg.Goal,
	}).Info("maze generated")

	return Run(game, term, cfg.PollInterval, logger)
}

// NewMazeGame generates a width x height maze and starts the player in the
// top-left lattice cell.
func NewMazeGame(width, height int, opts mazegen.Options) (*gameplay.Game, error) {
	grid, err := maps.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	mazegen.Generate(grid, opts)
	return gameplay.NewGame(grid, gameplay.DefaultStart)
}

// Run is the control loop: poll, handle at most one intent, repaint.
func Run(game *gameplay.Game, screen Screen, poll time.Duration, logger log.FieldLogger) error {
	if poll <= 0 {
		poll = defaultPollInterval
	}

	screen.Draw(render.Render(game.Grid()))
	for {
		intent := screen.PollIntent(poll)
		if intent == gameplay.IntentNone {
			continue
		}

		switch game.Handle(intent) {
		case gameplay.EventMoved:
			screen.Draw(render.Render(game.Grid()))
		case gameplay.EventBlocked:
			logger.WithField("intent", intent).Debug("move blocked")
		case gameplay.EventWon:
			logger.WithField("steps", game.Steps()).Info("goal reached")
			screen.ShowVictory(game.Steps())
		case gameplay.EventQuit:
			logger.WithFields(log.Fields{
				"phase": game.Phase(),
				"won":   game.Won(),
				"steps": game.Steps(),
			}).Info("quit")
			return nil
		}
	}
}
