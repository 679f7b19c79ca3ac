package moves

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/permcube/internal/cube"
)

// ErrUnknownMove is matched by every UnknownMoveError.
var ErrUnknownMove = errors.New("moves: unknown move")

// UnknownMoveError reports a token that is not in the catalog.
type UnknownMoveError struct {
	Token string
}

func (e *UnknownMoveError) Error() string {
	return fmt.Sprintf("moves: unknown move %q", e.Token)
}

// Is lets errors.Is match ErrUnknownMove.
func (e *UnknownMoveError) Is(target error) bool {
	return target == ErrUnknownMove
}

// ApplySequence applies whitespace-separated moves to start, left to right.
// It stops at the first unknown token and returns an *UnknownMoveError; in
// that case the returned state is the zero State and start is untouched.
func (c *Catalog) ApplySequence(start cube.State, text string) (cube.State, error) {
	s := start
	for _, name := range strings.Fields(text) {
		mv, ok := c.moves[name]
		if !ok {
			return cube.State{}, &UnknownMoveError{Token: name}
		}
		s = s.Apply(mv)
	}
	return s, nil
}

// Scramble applies text to the solved state.
func (c *Catalog) Scramble(text string) (cube.State, error) {
	return c.ApplySequence(cube.Solved, text)
}

// ApplySequenceLenient is like ApplySequence but skips unknown tokens,
// logging a warning for each. A nil logger uses log.Default().
func (c *Catalog) ApplySequenceLenient(start cube.State, text string, logger *log.Logger) cube.State {
	if logger == nil {
		logger = log.Default()
	}

	s := start
	for _, name := range strings.Fields(text) {
		mv, ok := c.moves[name]
		if !ok {
			logger.Warn("skipping unknown move", "token", name)
			continue
		}
		s = s.Apply(mv)
	}
	return s
}

// Validate checks every token in text without applying anything and
// returns the parsed tokens.
func (c *Catalog) Validate(text string) ([]string, error) {
	names := strings.Fields(text)
	for _, name := range names {
		if _, ok := c.moves[name]; !ok {
			return nil, &UnknownMoveError{Token: name}
		}
	}
	return names, nil
}
