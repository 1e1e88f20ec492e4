package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sjiamnocna/gomaze/internal/config"
	"github.com/sjiamnocna/gomaze/internal/logging"
	"github.com/sjiamnocna/gomaze/internal/ui"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "dotenv file with MAZE_* settings")
	poll := flag.Duration("poll", 0, "input poll interval (overrides MAZE_POLL_INTERVAL)")
	noGoal := flag.Bool("no-goal", false, "generate a maze without a goal")
	logFile := flag.String("log-file", "", "write logs to this file (overrides MAZE_LOG_FILE)")
	logLevel := flag.String("log-level", "", "log level (overrides MAZE_LOG_LEVEL)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *poll, *noGoal, *logFile, *logLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ui.RunTerminalGame(cfg, logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, poll time.Duration, noGoal bool, logFile, logLevel string) {
	if poll != 0 {
		cfg.PollInterval = poll
	}
	if noGoal {
		cfg.Goal = false
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
