package logging

import "io"

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New returns a Logger for the named backend; unknown names fall back to slog.
func New(backend string, w io.Writer, level string) Logger {
	if backend == BackendZap {
		return NewConsoleZap(w, level)
	}
	return NewTextSlog(w, level)
}

// Nop discards everything.
func Nop() Logger {
	return NewTextSlog(io.Discard, "error")
}
