package logger

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to w with a consistent prefix. Messages above
// verbosity are dropped.
func New(w io.Writer, prefix string, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, prefix, log.LstdFlags|log.LUTC))
}
