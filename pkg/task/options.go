package task

import "log/slog"

// Option is a functional option for configuring a Task.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		name:   "task",
	}
}

// WithLogger enables call-lifecycle logging for the task. Nil loggers are
// ignored and logging stays disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName sets the task name attached to log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}
