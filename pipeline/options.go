package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/kmolski/sha256"
	"github.com/kmolski/sha256/internal/clock"
)

// ErrInvalidWorkers is returned when the worker count is not positive.
var ErrInvalidWorkers = errors.New("workers must be greater than 0")

// Option is a function that configures a Pool.
type Option func(*config) error

// config holds the configuration of a Pool.
type config struct {
	workers int
	backend sha256.Backend
	logger  *slog.Logger
	clock   clock.Clock
}

func defaultConfig() *config {
	return &config{
		workers: runtime.NumCPU(),
		backend: sha256.Portable,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:   clock.Real(),
	}
}

// validate checks that the configuration is usable before any job runs.
func (c *config) validate() error {
	if c.workers <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.workers)
	}
	if err := c.backend.Check(); err != nil {
		return fmt.Errorf("backend %v: %w", c.backend, err)
	}
	return nil
}

// WithWorkers sets the maximum number of files hashed at once. The default
// is the number of CPUs.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidWorkers, n)
		}
		c.workers = n
		return nil
	}
}

// WithBackend sets the backend every worker hashes with. The default is
// sha256.Portable.
func WithBackend(b sha256.Backend) Option {
	return func(c *config) error {
		c.backend = b
		return nil
	}
}

// WithLogger sets the logger used for per-job diagnostics. A nil logger
// discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithClock sets the clock used to measure how long each file took.
func WithClock(clk clock.Clock) Option {
	return func(c *config) error {
		if clk != nil {
			c.clock = clk
		}
		return nil
	}
}
