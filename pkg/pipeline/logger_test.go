package pipeline

import (
	"io"

	"github.com/charmbracelet/log"
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: log.DebugLevel})
}
