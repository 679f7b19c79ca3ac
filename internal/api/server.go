// Package api serves the move catalog and solver over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/solver"
)

// maxSolveDepth caps the depth clients may request.
const maxSolveDepth = 8

// Server handles API requests. The catalog is shared read-only between
// requests, so handlers need no locking.
type Server struct {
	catalog      *moves.Catalog
	logger       *log.Logger
	defaultDepth int
	solveTimeout time.Duration
}

// NewServer creates a server. A nil logger uses log.Default().
func NewServer(catalog *moves.Catalog, logger *log.Logger, defaultDepth int) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if defaultDepth < 1 {
		defaultDepth = solver.DefaultMaxDepth
	}
	return &Server{
		catalog:      catalog,
		logger:       logger,
		defaultDepth: defaultDepth,
		solveTimeout: 30 * time.Second,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/moves", s.handleMoves)
	r.Post("/apply", s.handleApply)
	r.Post("/solve", s.handleSolve)

	return r
}

// ApplyRequest is the body of POST /apply.
type ApplyRequest struct {
	Moves string `json:"moves"`
}

// StateResponse describes a cube state.
type StateResponse struct {
	State  string            `json:"state"`
	Faces  map[string]string `json:"faces"`
	Solved bool              `json:"solved"`
	Cycles [][]int           `json:"cycles"`
	Period int               `json:"period"`
}

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Scramble string `json:"scramble"`
	MaxDepth int    `json:"max_depth,omitempty"`
}

// SolveResponse is the result of POST /solve.
type SolveResponse struct {
	Found      bool     `json:"found"`
	Moves      []string `json:"moves"`
	Depth      int      `json:"depth"`
	Nodes      int      `json:"nodes"`
	DurationMs int64    `json:"duration_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
	Token string `json:"token,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"moves":      s.catalog.Names(),
		"face_turns": moves.FaceTurns(),
	})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	state, err := s.catalog.Scramble(req.Moves)
	if err != nil {
		writeMoveError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, describeState(state))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	depth := req.MaxDepth
	if depth == 0 {
		depth = s.defaultDepth
	}
	if depth < 1 || depth > maxSolveDepth {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max_depth out of range"})
		return
	}

	// The solver only uses face turns, so reject anything else up front.
	names, err := s.catalog.Validate(req.Scramble)
	if err != nil {
		writeMoveError(w, err)
		return
	}
	for _, name := range names {
		if !moves.IsFaceTurn(name) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "scramble must use face turns only", Token: name})
			return
		}
	}

	state, err := s.catalog.Scramble(req.Scramble)
	if err != nil {
		writeMoveError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.solveTimeout)
	defer cancel()

	res, err := solver.New(
		solver.WithCatalog(s.catalog),
		solver.WithMaxDepth(depth),
		solver.WithLogger(s.logger),
	).Solve(ctx, state)
	if err != nil {
		s.logger.Warn("solve aborted", "scramble", req.Scramble, "err", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Info("solved", "scramble", req.Scramble, "found", res.Found, "nodes", res.Nodes)

	moveList := res.Moves
	if moveList == nil {
		moveList = []string{}
	}
	writeJSON(w, http.StatusOK, SolveResponse{
		Found:      res.Found,
		Moves:      moveList,
		Depth:      res.Depth,
		Nodes:      res.Nodes,
		DurationMs: res.Duration.Milliseconds(),
	})
}

func describeState(state cube.State) StateResponse {
	faces := make(map[string]string, len(cube.Faces))
	for _, f := range cube.Faces {
		var b []byte
		for _, c := range state.FaceColors(f) {
			b = append(b, c.String()...)
		}
		faces[f.String()] = string(b)
	}

	// Converted to ints since encoding/json writes []uint8 as base64.
	cycles := make([][]int, 0)
	for _, c := range state.Cycles() {
		cycle := make([]int, len(c))
		for i, pos := range c {
			cycle[i] = int(pos)
		}
		cycles = append(cycles, cycle)
	}

	return StateResponse{
		State:  state.String(),
		Faces:  faces,
		Solved: state.IsSolved(),
		Cycles: cycles,
		Period: state.Period(),
	}
}

func writeMoveError(w http.ResponseWriter, err error) {
	var unknown *moves.UnknownMoveError
	if errors.As(err, &unknown) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown move", Token: unknown.Token})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
