package schedule

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DebounceConfig configures the Debounce wrapper.
type DebounceConfig struct {
	// Wait is the quiescent period with no further calls required before
	// the newest pending call executes.
	Wait time.Duration `env:"DEBOUNCE_WAIT" envDefault:"250ms"`
}

// ThrottleConfig configures the Throttle wrapper.
type ThrottleConfig struct {
	// Window is the span during which all calls share the execution started
	// by the first call of the window.
	Window time.Duration `env:"THROTTLE_WINDOW" envDefault:"1s"`
}

// QueueConfig configures the Queue wrapper.
type QueueConfig struct {
	// Concurrency bounds the number of simultaneously executing calls.
	// Values below 1 are treated as 1.
	Concurrency int `env:"QUEUE_CONCURRENCY" envDefault:"1"`
}

// PollConfig configures the polling driver. Pass it to Poll via
// WithPollConfig; LoadConfig supplies the documented env defaults.
type PollConfig struct {
	// Interval is the delay between a call's settlement and the next tick.
	Interval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`

	// Immediate fires the first tick without waiting one interval.
	Immediate bool `env:"POLL_IMMEDIATE" envDefault:"true"`
}

// LoadEnv loads variables from the given dotenv files into the process
// environment before config parsing. Defaults to ".env" when no paths are
// given. Existing environment variables keep precedence.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig parses a config struct of type T from environment variables,
// applying the struct's env tag defaults for unset variables.
func LoadConfig[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}
