package youplot

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing plain text to w. Only warnings and
// errors are shown unless debug is true.
func NewLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
