package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// setupLogging builds the process logger
// The terminal belongs to the renderer, so interactive runs without a log path discard output
func setupLogging(path string, headless bool) (*logrus.Logger, *os.File, error) {
	log := logrus.New()

	if path == "" {
		if headless {
			log.SetOutput(os.Stderr)
			log.Formatter = &logrus.TextFormatter{ForceColors: true}
		} else {
			log.SetOutput(io.Discard)
		}
		return log, nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}
	return log, f, nil
}
