package permcube

import (
	"context"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/solver"
)

// State is a cube configuration stored as a permutation of facelets.
type State = cube.State

// Result is the outcome of a search.
type Result = solver.Result

// Solved is the identity state.
var Solved = cube.Solved

// Scramble applies a move sequence to the solved cube.
func Scramble(sequence string) (State, error) {
	return moves.Default().Scramble(sequence)
}

// Apply applies a move sequence to start. On an unknown token it returns
// an error wrapping ErrUnknownMove and a zero State.
func Apply(start State, sequence string) (State, error) {
	return moves.Default().ApplySequence(start, sequence)
}

// Move returns the catalog entry for a single move name such as "R'" or "Fw2".
func Move(name string) (State, bool) {
	return moves.Default().Lookup(name)
}

// Moves returns every name in the catalog, sorted.
func Moves() []string {
	return moves.Default().Names()
}

// Inverse returns the sequence that undoes the given one.
func Inverse(sequence string) (string, error) {
	if _, err := moves.Default().Validate(sequence); err != nil {
		return "", err
	}
	inv, _ := moves.InvertSequence(sequence)
	return inv, nil
}

// Solve searches for the shortest face-turn sequence that returns s to the
// solved state. The state must be reachable by face turns alone; a state
// with moved centers is never found.
func Solve(ctx context.Context, s State, opts ...Option) (Result, error) {
	return solver.New(opts...).Solve(ctx, s)
}
