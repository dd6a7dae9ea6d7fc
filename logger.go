package pine

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the narrow logging surface the engine needs. It is satisfied
// directly by *log.Logger from github.com/charmbracelet/log.
//
// The engine logs at exactly four points: task not found, task start, task
// finish (with duration), and a propagated runner error. Callers that want
// hard-failure behavior wrap this interface and watch for Error calls.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

func defaultLogger() Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}
