// internal/logger/logger.go
package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// defaultLogFormat defines the format used for console log output.
const defaultLogFormat = "%{time:2006/01/02 15:04:05} %{color}%{level:-8s} %{module}%{color:reset}: %{message}"

// Levels lists the accepted values for the log-level setting, most severe first.
var Levels = []string{"critical", "error", "warning", "notice", "info", "debug"}

// Warner is the subset of the logger used by components that report
// recoverable per-item problems.
type Warner interface {
	Warningf(format string, args ...interface{})
}

// New returns a logger for module writing to stderr at the given level.
// An unknown level falls back to INFO.
func New(level string, module string) *logging.Logger {
	return NewWithWriter(os.Stderr, level, module)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	logging.SetBackend(lvlBackend)
	return logging.MustGetLogger(module)
}
