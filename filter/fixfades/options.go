package fixfades

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

const (
	// DefaultMode is the mode used when WithMode is not given.
	DefaultMode = ModeMean

	// DefaultThreshold is the normalized field difference below which a
	// plane is passed through unchanged.
	DefaultThreshold = 0.002

	defaultOptimization = true
)

type config struct {
	mode           Mode
	threshold      float64
	color          []float64 // nil means 0 for every plane
	opt            bool
	parallelPlanes bool
	pool           *frame.Pool
	logger         *slog.Logger
}

func defaultConfig() config {
	return config{
		mode:      DefaultMode,
		threshold: DefaultThreshold,
		opt:       defaultOptimization,
	}
}

// Option configures a [Filter].
type Option func(*config) error

// WithMode selects the rescaling policy (default [ModeMean]).
func WithMode(m Mode) Option {
	return func(cfg *config) error {
		if !m.Valid() {
			return fmt.Errorf("%w: mode must be 0, 1, or 2: %d", ErrRange, int(m))
		}

		cfg.mode = m

		return nil
	}
}

// WithThreshold sets the normalized field difference at or above which a
// plane is rescaled (default 0.002, must be >= 0).
func WithThreshold(threshold float64) Option {
	return func(cfg *config) error {
		if threshold < 0 || math.IsNaN(threshold) {
			return fmt.Errorf("%w: threshold must not be negative: %f", ErrRange, threshold)
		}

		cfg.threshold = threshold

		return nil
	}
}

// WithColor sets the baseline ("black") value of each plane. The number of
// values must equal the clip's plane count.
func WithColor(color ...float64) Option {
	return func(cfg *config) error {
		cfg.color = append(make([]float64, 0, len(color)), color...)

		return nil
	}
}

// WithOptimization allows the AVX+FMA kernels when the CPU supports them
// (default true). Disabling it always binds the generic kernels.
func WithOptimization(enabled bool) Option {
	return func(cfg *config) error {
		cfg.opt = enabled

		return nil
	}
}

// WithPlaneParallelism processes the planes of a frame concurrently.
func WithPlaneParallelism(enabled bool) Option {
	return func(cfg *config) error {
		cfg.parallelPlanes = enabled

		return nil
	}
}

// WithFramePool makes Frame take destination frames from pool instead of
// allocating them. Frames that do not match the source shape are
// allocated as usual.
func WithFramePool(pool *frame.Pool) Option {
	return func(cfg *config) error {
		cfg.pool = pool

		return nil
	}
}

// WithLogger sets the logger used for construction diagnostics
// (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger

		return nil
	}
}
