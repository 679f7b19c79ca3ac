package permcube

import (
	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/permcube/internal/solver"
)

// Option configures a Solve call.
type Option = solver.Option

// DefaultMaxDepth is the search bound used when WithMaxDepth is not given.
const DefaultMaxDepth = solver.DefaultMaxDepth

// WithMaxDepth sets the exclusive bound on solution length. The search tries
// every length from 0 up to n-1. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return solver.WithMaxDepth(n)
}

// WithLogger sets the logger used for per-depth progress at debug level.
func WithLogger(l *log.Logger) Option {
	return solver.WithLogger(l)
}
