// Package log configures the command-line logger.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger on w. verbose lowers the level to debug so that
// every trial is logged.
func New(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
