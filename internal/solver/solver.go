// Package solver finds face-turn sequences that restore a scrambled cube
// using iterative-deepening depth-first search.
//
// The search is exhaustive and exponential in depth. Its only pruning is
// the move availability rule: a face is never turned twice in a row, and
// two opposite faces are only turned in one fixed order.
package solver

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
)

// cancelCheckInterval is how many nodes are visited between context checks.
const cancelCheckInterval = 4096

// Result is the outcome of a search. Found is false when no sequence
// shorter than the depth bound exists; that is not an error.
type Result struct {
	Moves    []string
	Found    bool
	Depth    int
	Nodes    int
	Duration time.Duration
}

// Solver searches with a fixed move set. It holds no per-search state, so
// one Solver may serve concurrent calls to Solve.
type Solver struct {
	maxDepth int
	logger   *log.Logger
	names    []string
	turns    []cube.State
	faces    []cube.Face
}

// New creates a solver for the 18 face turns.
func New(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	names := moves.FaceTurns()
	s := &Solver{
		maxDepth: cfg.maxDepth,
		logger:   cfg.logger,
		names:    names,
		turns:    make([]cube.State, len(names)),
		faces:    make([]cube.Face, len(names)),
	}
	for i, name := range names {
		s.turns[i] = cfg.catalog.MustLookup(name)
		s.faces[i], _ = moves.FaceOf(name)
	}
	return s
}

// MaxDepth returns the exclusive depth bound.
func (s *Solver) MaxDepth() int {
	return s.maxDepth
}

// search is the state of one Solve call.
type search struct {
	solver *Solver
	ctx    context.Context
	path   []int
	nodes  int
	err    error
}

// Solve looks for a sequence of at most MaxDepth()-1 face turns that takes
// state to solved. The state must have been reached with face turns only,
// since success is tested with IsSolved0.
//
// The only error returned is the context's, if it is cancelled mid-search.
func (s *Solver) Solve(ctx context.Context, state cube.State) (Result, error) {
	start := time.Now()
	sr := &search{solver: s, ctx: ctx, path: make([]int, 0, s.maxDepth)}

	for depth := 0; depth < s.maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return Result{Nodes: sr.nodes, Duration: time.Since(start)}, err
		}

		s.logger.Debug("searching", "depth", depth)
		if sr.depthLimited(state, depth) {
			return Result{
				Moves:    sr.solution(),
				Found:    true,
				Depth:    depth,
				Nodes:    sr.nodes,
				Duration: time.Since(start),
			}, nil
		}
		if sr.err != nil {
			return Result{Nodes: sr.nodes, Duration: time.Since(start)}, sr.err
		}
	}

	s.logger.Debug("no solution within bound", "max_depth", s.maxDepth, "nodes", sr.nodes)
	return Result{Nodes: sr.nodes, Duration: time.Since(start)}, nil
}

func (sr *search) depthLimited(state cube.State, depth int) bool {
	sr.nodes++
	if sr.nodes%cancelCheckInterval == 0 {
		if err := sr.ctx.Err(); err != nil {
			sr.err = err
			return false
		}
	}

	if depth == 0 {
		return state.IsSolved0()
	}

	s := sr.solver
	for i := range s.turns {
		if !sr.available(i) {
			continue
		}

		sr.path = append(sr.path, i)
		if sr.depthLimited(state.Apply(s.turns[i]), depth-1) {
			return true
		}
		sr.path = sr.path[:len(sr.path)-1]

		if sr.err != nil {
			return false
		}
	}

	return false
}

// available applies the move availability rule to candidate i given the
// last move on the path.
func (sr *search) available(i int) bool {
	if len(sr.path) == 0 {
		return true
	}
	prev := sr.solver.faces[sr.path[len(sr.path)-1]]
	return faceAvailable(prev, sr.solver.faces[i])
}

func (sr *search) solution() []string {
	out := make([]string, len(sr.path))
	for i, idx := range sr.path {
		out[i] = sr.solver.names[idx]
	}
	return out
}

// faceAvailable reports whether cur may follow prev. The same face is never
// turned twice in a row, and opposite faces must appear in letter order.
func faceAvailable(prev, cur cube.Face) bool {
	if prev == cur {
		return false
	}
	if prev.Opposite() == cur {
		return prev.String() < cur.String()
	}
	return true
}

// MoveAvailable reports whether the move named cur may follow the move named
// prev. An empty prev means cur is the first move, which is always allowed.
func MoveAvailable(prev, cur string) bool {
	if prev == "" {
		return true
	}
	pf, ok := moves.FaceOf(prev)
	if !ok {
		return true
	}
	cf, ok := moves.FaceOf(cur)
	if !ok {
		return true
	}
	return faceAvailable(pf, cf)
}

// Valid reports whether a move sequence obeys the availability rule
// throughout.
func Valid(names []string) bool {
	prev := ""
	for _, name := range names {
		if !MoveAvailable(prev, name) {
			return false
		}
		prev = name
	}
	return true
}
