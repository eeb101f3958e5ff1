// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a stderr logger for the CLI. quiet keeps warnings and
// errors only; verbose enables debug output. quiet wins over verbose.
func NewLogger(dst io.Writer, quiet, verbose bool) *log.Logger {
	l := log.New()
	l.SetOutput(dst)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	switch {
	case quiet:
		l.SetLevel(log.WarnLevel)
	case verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}

