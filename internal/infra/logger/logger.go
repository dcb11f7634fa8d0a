package logger

import (
	"os"

	"github.com/dhank77/undangan.love/pkg/env"
	"github.com/sirupsen/logrus"
)

// New builds the service logger and makes it the logrus standard logger too,
// so packages logging through logrus.WithField share its settings.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(env.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.WithError(err).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	logrus.SetFormatter(log.Formatter)
	logrus.SetOutput(log.Out)
	logrus.SetLevel(level)
	return log
}
