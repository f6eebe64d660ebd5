package errors

import (
	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes errors to a charm logger.
type LogHandler struct {
	// Logger receives the records; nil uses log.Default().
	Logger *log.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleError logs a DriftError.
func (h *LogHandler) HandleError(err *DriftError) {
	if err == nil {
		return
	}
	l := h.logger()
	if !h.Verbose {
		l.Error(err.Op, "err", err.Err)
		return
	}
	l.Error(err.Op, "kind", err.Kind, "err", err.Err, "at", err.Timestamp)
	if err.StackTrace != "" {
		l.Debug("stack trace", "op", err.Op, "stack", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Error("panic", "op", err.Op, "value", err.Value)
	} else {
		l.Error("panic", "value", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Debug("stack trace", "stack", err.StackTrace)
	}
}
