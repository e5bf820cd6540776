package functional

import (
	"errors"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/reentry/cycle"
)

var (
	// ErrNilAdjacency is returned when Search receives a nil adjacency.
	ErrNilAdjacency = errors.New("functional: adjacency is nil")

	// ErrInvalidStart is returned when WithStarts names a vertex outside the mesh.
	ErrInvalidStart = errors.New("functional: start vertex out of range")
)

// Option configures Search.
type Option func(*Options)

// Options holds the search settings.
type Options struct {
	// Bounds is the acceptance window; defaults to cycle.DefaultBounds().
	Bounds cycle.Bounds

	// Workers is the number of goroutines exploring start vertices.
	// 1 (the default) runs in the calling goroutine.
	Workers int

	// Logger receives per-start progress at Debug level.
	Logger logrus.FieldLogger

	// OpenClosingTime, when true, tests a closure against the time of the
	// walk before the closing segment, as older rotor exports were computed.
	// By default the closing segment is included.
	OpenClosingTime bool

	// Starts restricts the start vertices; nil means 0..N-1.
	Starts []int

	// CheckEvery is how many vertex expansions pass between context checks
	// inside one start.
	CheckEvery int
}

const defaultCheckEvery = 4096

// DefaultOptions returns the sequential, silent, default-window settings.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Bounds:     cycle.DefaultBounds(),
		Workers:    1,
		Logger:     l,
		CheckEvery: defaultCheckEvery,
	}
}

// WithBounds sets the acceptance window.
func WithBounds(b cycle.Bounds) Option {
	return func(o *Options) {
		o.Bounds = b
	}
}

// WithWorkers sets the worker count; n ≤ 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithLogger routes progress messages to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOpenClosingTime judges closures by the time before the closing segment.
func WithOpenClosingTime() Option {
	return func(o *Options) {
		o.OpenClosingTime = true
	}
}

// WithStarts restricts the search to the given start vertices, explored in
// the order given.
func WithStarts(starts ...int) Option {
	return func(o *Options) {
		o.Starts = append([]int(nil), starts...)
	}
}

// WithCheckEvery sets the context check interval; n ≤ 0 is ignored.
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CheckEvery = n
		}
	}
}
