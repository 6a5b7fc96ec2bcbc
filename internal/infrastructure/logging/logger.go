package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eldamo-anki/internal/infrastructure/config"
)

// NewLogger builds a logrus logger from the log configuration. Verbose mode forces debug level.
func NewLogger(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if cfg.Log.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	switch cfg.Log.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
