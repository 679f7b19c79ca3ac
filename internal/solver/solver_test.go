package solver

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
)

func scramble(t *testing.T, text string) cube.State {
	t.Helper()
	s, err := moves.Default().Scramble(text)
	if err != nil {
		t.Fatalf("Scramble(%q): %v", text, err)
	}
	return s
}

func checkSolves(t *testing.T, start cube.State, res Result) {
	t.Helper()
	s, err := moves.Default().ApplySequence(start, moves.FormatSequence(res.Moves))
	if err != nil {
		t.Fatalf("ApplySequence: %v", err)
	}
	if !s.IsSolved0() {
		t.Errorf("solution %v does not solve the cube", res.Moves)
		t.Log(s.Net())
	}
	if !Valid(res.Moves) {
		t.Errorf("solution %v breaks the move availability rule", res.Moves)
	}
}

func TestMoveAvailable(t *testing.T) {
	tests := []struct {
		prev, cur string
		want      bool
	}{
		{"", "R", true},
		{"R", "R'", false},
		{"R'", "R2", false},
		{"R", "U", true},
		{"D", "U", true},
		{"U", "D", false},
		{"U2", "D'", false},
		{"L", "R", true},
		{"R", "L", false},
		{"B", "F", true},
		{"F'", "B", false},
		{"F", "R", true},
	}

	for _, tt := range tests {
		if got := MoveAvailable(tt.prev, tt.cur); got != tt.want {
			t.Errorf("MoveAvailable(%q, %q) = %v, want %v", tt.prev, tt.cur, got, tt.want)
		}
	}
}

func TestSolveSolved(t *testing.T) {
	res, err := New().Solve(context.Background(), cube.Solved)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Found || res.Depth != 0 || len(res.Moves) != 0 {
		t.Errorf("solved cube should give an empty solution, got %+v", res)
	}
}

func TestSolveShortScrambles(t *testing.T) {
	tests := []struct {
		scramble string
		want     []string
	}{
		{"R", []string{"R'"}},
		{"U2", []string{"U2"}},
		{"R U", []string{"U'", "R'"}},
		{"F2 D'", []string{"D", "F2"}},
		{"U D", []string{"D'", "U'"}},
		{"R U R'", []string{"R", "U'", "R'"}},
	}

	s := New(WithMaxDepth(5))
	for _, tt := range tests {
		start := scramble(t, tt.scramble)
		res, err := s.Solve(context.Background(), start)
		if err != nil {
			t.Fatalf("Solve(%q): %v", tt.scramble, err)
		}
		if !res.Found {
			t.Errorf("Solve(%q) found nothing", tt.scramble)
			continue
		}
		if !reflect.DeepEqual(res.Moves, tt.want) {
			t.Errorf("Solve(%q) = %v, want %v", tt.scramble, res.Moves, tt.want)
		}
		checkSolves(t, start, res)
	}
}

func TestSolveScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 6 search is slow")
	}

	start := scramble(t, "R U R' F2 D2 L")
	res, err := New(WithMaxDepth(7)).Solve(context.Background(), start)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a solution within depth 7")
	}
	if len(res.Moves) > 6 {
		t.Errorf("solution %v is longer than 6 moves", res.Moves)
	}
	if want := []string{"L'", "D2", "F2", "R", "U'", "R'"}; !reflect.DeepEqual(res.Moves, want) {
		t.Errorf("solution = %v, want %v", res.Moves, want)
	}
	checkSolves(t, start, res)
}

func TestSolveNotFound(t *testing.T) {
	res, err := New(WithMaxDepth(3)).Solve(context.Background(), scramble(t, "R U R'"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Found {
		t.Errorf("three-move scramble should not be solved below depth 3, got %v", res.Moves)
	}
	if res.Moves != nil {
		t.Errorf("no moves expected, got %v", res.Moves)
	}
	if res.Nodes == 0 {
		t.Error("search should report visited nodes")
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Solve(ctx, scramble(t, "R U R' F2 D2 L"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSolveLogsDepths(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := New(WithLogger(logger), WithMaxDepth(3)).Solve(context.Background(), scramble(t, "R U"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := strings.Count(buf.String(), "searching"); got != 3 {
		t.Errorf("expected 3 depth messages, got %d:\n%s", got, buf.String())
	}
}

func TestWithMaxDepthIgnoresNonPositive(t *testing.T) {
	if got := New(WithMaxDepth(0)).MaxDepth(); got != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", got, DefaultMaxDepth)
	}
}

func TestValid(t *testing.T) {
	if !Valid([]string{"D", "U", "L", "R'"}) {
		t.Error("D U L R' should be valid")
	}
	if Valid([]string{"D", "U", "R", "L'"}) {
		t.Error("R L' should be invalid")
	}
	if Valid([]string{"R", "L", "U"}) {
		t.Error("R L should be invalid")
	}
}
