package schedule

import (
	"log/slog"
	"time"
)

// PollOption is a functional option for configuring the polling driver.
type PollOption func(*pollOptions)

type pollOptions struct {
	interval  time.Duration
	immediate bool
	logger    *slog.Logger
}

func defaultPollOptions() *pollOptions {
	return &pollOptions{
		interval:  5 * time.Second,
		immediate: true,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithInterval sets the delay between a call's settlement and the next tick.
func WithInterval(d time.Duration) PollOption {
	return func(o *pollOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithDelayedStart makes the first tick wait one interval instead of firing
// immediately.
func WithDelayedStart() PollOption {
	return func(o *pollOptions) {
		o.immediate = false
	}
}

// WithPollConfig applies an environment-loaded PollConfig verbatim. Use
// LoadConfig[PollConfig]() to obtain one with the documented defaults.
func WithPollConfig(cfg PollConfig) PollOption {
	return func(o *pollOptions) {
		if cfg.Interval > 0 {
			o.interval = cfg.Interval
		}
		o.immediate = cfg.Immediate
	}
}

// WithPollLogger sets the logger for tick-level records.
func WithPollLogger(logger *slog.Logger) PollOption {
	return func(o *pollOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
