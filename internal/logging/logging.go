// Package logging configures the process-wide logrus logger used for
// diagnostics. User-facing output never goes through it.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup points logrus at w. Diagnostics are limited to warnings unless
// verbose is set, in which case debug events (path resolution, file
// creation, writes) are shown too.
func Setup(w io.Writer, verbose bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
}
