//go:build !windows

package hostinput

import "log/slog"

// NewPlatformSink returns the logging sink on platforms without a
// native injector.
func NewPlatformSink(logger *slog.Logger) Sink {
	return &LogSink{Logger: logger}
}
