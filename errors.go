package permcube

import (
	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
)

// Sentinel errors for the permcube package.
var (
	// ErrInvalidPermutation is returned for facelet arrays that are not
	// permutations of 0..53.
	ErrInvalidPermutation = cube.ErrInvalidPermutation

	// ErrUnknownMove is returned when a sequence contains a token that is
	// not in the move catalog.
	ErrUnknownMove = moves.ErrUnknownMove
)
