// Package logging builds the logrus logger. The terminal is owned by the
// game screen, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing to path at the named level. An empty path
// discards output. The returned close func releases the log file.
func New(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file.Close, nil
}
