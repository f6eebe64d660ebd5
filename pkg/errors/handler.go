package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler replaces the global error handler. Nil restores a LogHandler
// writing to the default charm logger.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// Handler returns the global error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends err to the global handler, stamping it if needed.
func Report(err *DriftError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// RecoverError must be deferred directly. It recovers a panic in op,
// reports it, and replaces *errp with a KindPanic DriftError wrapping the
// PanicError.
//
//	func (h *Host) Run(ctx context.Context) (err error) {
//	    defer errors.RecoverError("preview.Host.Run", &err)
//	    ...
//	}
func RecoverError(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	perr := &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(1),
		Timestamp:  time.Now(),
	}
	ReportPanic(perr)
	if errp != nil {
		*errp = &DriftError{
			Op:         op,
			Kind:       KindPanic,
			Err:        perr,
			StackTrace: perr.StackTrace,
			Timestamp:  perr.Timestamp,
		}
	}
}

// CaptureStack formats the calling goroutine's stack, skipping skip frames
// above its caller.
func CaptureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
