package coreseq

// Logger abstracts the subset of *slog.Logger used by LogTap.
//
// Using an interface allows unit testing and alternative
// implementations; *slog.Logger satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DiscardLogger returns a Logger that drops all records. It is the
// default used when no logger is supplied, following the convention of
// not writing to stdout/stderr unless explicitly configured.
func DiscardLogger() Logger {
	return discardLogger{}
}

type discardLogger struct{}

var _ Logger = discardLogger{}

func (discardLogger) Debug(msg string, args ...any) {
	// nothing
}

func (discardLogger) Info(msg string, args ...any) {
	// nothing
}

// LogTap returns a Chain that emits one Debug record per element through
// logger as elements flow by, without altering the stream. Unlike Show
// it is not gated by the verbose flag; silence it by configuring the
// logger. A nil logger discards everything.
func LogTap[T any](c Chain[T], logger Logger, msg string) Chain[T] {
	if logger == nil {
		logger = DiscardLogger()
	}
	return c.Tap(func(v T) {
		logger.Debug(msg, "item", v)
	})
}
