package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-audio/internal/config"
)

// New creates a logrus logger configured from the environment
func New(env *config.Environment) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if env.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}
