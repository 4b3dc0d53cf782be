package explore

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Settings are the exploration budgets.
type Settings struct {
	// MaxRuns bounds the number of executions per property. Zero means no bound.
	MaxRuns int

	// MaxDepth bounds the number of symbolic regions per path. A path that asks
	// for more is pruned.
	MaxDepth int

	// Window is the number of neighbors tried around each boundary of a
	// multi-byte region.
	Window int

	// EnumerateLimit is the size of the largest interval hinted by a strategy
	// whose every value is tried. Larger intervals are sampled. Zero means
	// DefaultEnumerateLimit.
	EnumerateLimit int

	// ExtraValues are additional patterns tried for every multi-byte region.
	ExtraValues []uint64

	// Timeout bounds the wall-clock time per property. Zero means no bound.
	Timeout time.Duration

	// StopOnFailure ends the exploration at the first failing path.
	StopOnFailure bool

	// Jobs is the number of properties explored concurrently by ExploreAll.
	Jobs int
}

// DefaultSettings returns the budgets used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		MaxRuns:        200000,
		MaxDepth:       1024,
		Window:         DefaultWindow,
		EnumerateLimit: DefaultEnumerateLimit,
		StopOnFailure:  true,
		Jobs:           runtime.NumCPU(),
	}
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithSettings replaces all budgets at once.
func WithSettings(s Settings) Option {
	return func(e *Explorer) {
		e.settings = s
	}
}

// WithMaxRuns bounds the number of executions per property.
func WithMaxRuns(n int) Option {
	return func(e *Explorer) {
		e.settings.MaxRuns = n
	}
}

// WithMaxDepth bounds the number of symbolic regions per path.
func WithMaxDepth(n int) Option {
	return func(e *Explorer) {
		e.settings.MaxDepth = n
	}
}

// WithWindow sets the boundary neighborhood of multi-byte regions.
func WithWindow(n int) Option {
	return func(e *Explorer) {
		e.settings.Window = n
	}
}

// WithEnumerateLimit sets the largest hinted interval that is enumerated.
func WithEnumerateLimit(n int) Option {
	return func(e *Explorer) {
		e.settings.EnumerateLimit = n
	}
}

// WithExtraValues adds patterns tried for every multi-byte region.
func WithExtraValues(values ...uint64) Option {
	return func(e *Explorer) {
		e.settings.ExtraValues = append(e.settings.ExtraValues, values...)
	}
}

// WithTimeout bounds the wall-clock time per property.
func WithTimeout(d time.Duration) Option {
	return func(e *Explorer) {
		e.settings.Timeout = d
	}
}

// WithStopOnFailure controls whether exploration ends at the first failure.
func WithStopOnFailure(stop bool) Option {
	return func(e *Explorer) {
		e.settings.StopOnFailure = stop
	}
}

// WithJobs sets the concurrency of ExploreAll.
func WithJobs(n int) Option {
	return func(e *Explorer) {
		e.settings.Jobs = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Explorer) {
		e.logger = logger
	}
}

// WithCaseSink receives the recorded case of every failing path.
func WithCaseSink(sink CaseSink) Option {
	return func(e *Explorer) {
		e.sink = sink
	}
}
