package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger writing to out. Unknown levels fall back
// to info rather than failing, so a typo in config never kills startup.
func New(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
