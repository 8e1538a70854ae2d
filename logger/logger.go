package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vin0san/mini-twitter/config"
)

// InitLogger configures the global logrus logger. When a log file is
// configured but cannot be opened, output falls back to stdout.
func InitLogger(cfg config.Log) io.Closer {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(cfg.Level)
	logrus.SetOutput(os.Stdout)

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", cfg.File, err)
		} else {
			logrus.SetOutput(logFile)
			closer = logFile
		}
	}

	logrus.WithField("level", cfg.Level.String()).Info("Logger initialized")
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
