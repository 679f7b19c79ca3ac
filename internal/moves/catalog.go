// Package moves builds the catalog of named moves from a small generating
// set and applies move sequences written in standard notation.
package moves

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SeamusWaldron/permcube/internal/cube"
)

// ErrUndefinedMove is returned by Build when a formula references a move
// that has not been defined yet.
var ErrUndefinedMove = errors.New("moves: undefined move in formula")

// Catalog maps move names to their permutations. It is immutable once built
// and safe for concurrent use.
type Catalog struct {
	moves map[string]cube.State
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog, building it on first use. A failure
// here is a bug in the generator tables, so it panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Build()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Build derives every move from the x and y rotations and the U turn.
func Build() (*Catalog, error) {
	base := map[string]cube.State{
		"x": rotationX,
		"y": rotationY,
		"U": cube.ProductOfCycles(upCycles),
	}

	for _, d := range derivations {
		s, err := compose(base, d.formula)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", d.name, err)
		}
		base[d.name] = s
	}

	c := &Catalog{moves: make(map[string]cube.State, len(baseNames)*3+18)}
	for _, name := range baseNames {
		s, ok := base[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedMove, name)
		}
		c.register(name, s)

		// Wide moves also answer to the lowercase face letter.
		if strings.HasSuffix(name, "w") {
			c.register(strings.ToLower(name[:1]), s)
		}
	}

	return c, nil
}

func (c *Catalog) register(name string, s cube.State) {
	c.moves[name] = s
	c.moves[name+"2"] = s.Apply(s)
	c.moves[name+"'"] = s.Invert()
}

// compose evaluates a space-separated formula against the moves defined so far.
func compose(defined map[string]cube.State, formula string) (cube.State, error) {
	s := cube.Identity()
	for _, name := range strings.Fields(formula) {
		mv, ok := defined[name]
		if !ok {
			return cube.State{}, fmt.Errorf("%w: %s", ErrUndefinedMove, name)
		}
		s = s.Apply(mv)
	}
	return s, nil
}

// Lookup returns the permutation for a move name.
func (c *Catalog) Lookup(name string) (cube.State, bool) {
	s, ok := c.moves[name]
	return s, ok
}

// MustLookup is like Lookup but panics on unknown names.
func (c *Catalog) MustLookup(name string) cube.State {
	s, ok := c.moves[name]
	if !ok {
		panic(fmt.Sprintf("moves: unknown move %q", name))
	}
	return s
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.moves)
}

// Names returns every catalog entry name in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.moves))
	for name := range c.moves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BaseNames returns the base moves in declaration order.
func BaseNames() []string {
	return append([]string(nil), baseNames...)
}

// IsFaceTurn reports whether name is one of the 18 face turns.
func IsFaceTurn(name string) bool {
	for _, ft := range faceTurns {
		if ft == name {
			return true
		}
	}
	return false
}

// FaceTurns returns the 18 face turns in canonical search order:
// quarter turns, then half turns, then prime turns, each in U F R D B L order.
func FaceTurns() []string {
	return append([]string(nil), faceTurns...)
}
