package solver

import (
	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/permcube/internal/moves"
)

// DefaultMaxDepth bounds the search when no depth is configured.
const DefaultMaxDepth = 7

// Option configures a Solver.
type Option func(*config)

type config struct {
	maxDepth int
	logger   *log.Logger
	catalog  *moves.Catalog
}

func defaultConfig() *config {
	return &config{
		maxDepth: DefaultMaxDepth,
		logger:   log.Default(),
		catalog:  moves.Default(),
	}
}

// WithMaxDepth sets the exclusive bound on search depth: depths
// 0 through n-1 are tried. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithLogger sets the logger used for per-depth progress messages.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCatalog sets the catalog the face turns are looked up in.
func WithCatalog(cat *moves.Catalog) Option {
	return func(c *config) {
		if cat != nil {
			c.catalog = cat
		}
	}
}
