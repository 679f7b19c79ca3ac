package moves

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/permcube/internal/cube"
)

func mustScramble(t *testing.T, text string) cube.State {
	t.Helper()
	s, err := Default().Scramble(text)
	if err != nil {
		t.Fatalf("Scramble(%q): %v", text, err)
	}
	return s
}

func TestBuild(t *testing.T) {
	c, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 18 base moves and 6 lowercase wide aliases, three entries each.
	if c.Len() != 72 {
		t.Errorf("catalog has %d entries, want 72", c.Len())
	}
	for _, name := range FaceTurns() {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("face turn %s missing from catalog", name)
		}
	}
}

func TestComposeUndefinedMove(t *testing.T) {
	_, err := compose(map[string]cube.State{}, "x Q")
	if !errors.Is(err, ErrUndefinedMove) {
		t.Errorf("expected ErrUndefinedMove, got %v", err)
	}
}

func TestFaceTurnCycles(t *testing.T) {
	want := map[string][][]uint8{
		"U": {{0, 2, 8, 6}, {1, 5, 7, 3}, {9, 45, 36, 18}, {10, 46, 37, 19}, {11, 47, 38, 20}},
		"F": {{6, 18, 29, 53}, {7, 21, 28, 50}, {8, 24, 27, 47}, {9, 11, 17, 15}, {10, 14, 16, 12}},
		"R": {{2, 42, 29, 11}, {5, 39, 32, 14}, {8, 36, 35, 17}, {18, 20, 26, 24}, {19, 23, 25, 21}},
		"D": {{15, 24, 42, 51}, {16, 25, 43, 52}, {17, 26, 44, 53}, {27, 29, 35, 33}, {28, 32, 34, 30}},
		"B": {{0, 51, 35, 20}, {1, 48, 34, 23}, {2, 45, 33, 26}, {36, 38, 44, 42}, {37, 41, 43, 39}},
		"L": {{0, 9, 27, 44}, {3, 12, 30, 41}, {6, 15, 33, 38}, {45, 47, 53, 51}, {46, 50, 52, 48}},
	}

	c := Default()
	for name, cycles := range want {
		if got := c.MustLookup(name).Cycles(); !reflect.DeepEqual(got, cycles) {
			t.Errorf("%s cycles = %v, want %v", name, got, cycles)
		}
	}
}

func TestSliceCycles(t *testing.T) {
	want := map[string][][]uint8{
		"M": {{1, 10, 28, 43}, {4, 13, 31, 40}, {7, 16, 34, 37}},
		"E": {{12, 21, 39, 48}, {13, 22, 40, 49}, {14, 23, 41, 50}},
		"S": {{3, 19, 32, 52}, {4, 22, 31, 49}, {5, 25, 30, 46}},
	}

	c := Default()
	for name, cycles := range want {
		if got := c.MustLookup(name).Cycles(); !reflect.DeepEqual(got, cycles) {
			t.Errorf("%s cycles = %v, want %v", name, got, cycles)
		}
	}
}

func TestFaceTurnsKeepCenters(t *testing.T) {
	c := Default()
	for _, name := range FaceTurns() {
		s := c.MustLookup(name)
		for _, f := range cube.Faces {
			center := int(f)*cube.FaceletsPerFace + 4
			if int(s.At(center)) != center {
				t.Errorf("%s moves the %v center", name, f)
			}
		}
	}
}

func TestMoveRelations(t *testing.T) {
	c := Default()
	relations := map[string]string{
		"x":  "R M' L'",
		"y":  "U E' D'",
		"z":  "F S B'",
		"r":  "R M'",
		"u":  "U E'",
		"f":  "F S",
		"d":  "D E",
		"l":  "L M",
		"b":  "B S'",
		"R2": "R R",
		"R'": "R R R",
	}
	for lhs, rhs := range relations {
		want := mustScramble(t, rhs)
		if got := c.MustLookup(lhs); got != want {
			t.Errorf("%s should equal %s", lhs, rhs)
		}
	}
}

func TestWideAliases(t *testing.T) {
	c := Default()
	for _, pair := range [][2]string{{"Uw", "u"}, {"Fw2", "f2"}, {"Rw'", "r'"}, {"Dw", "d"}, {"Bw2", "b2"}, {"Lw'", "l'"}} {
		if c.MustLookup(pair[0]) != c.MustLookup(pair[1]) {
			t.Errorf("%s and %s should be the same move", pair[0], pair[1])
		}
	}
}

func TestEveryMoveHasOrderDividingFour(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		if !c.MustLookup(name).Pow(4).IsSolved0() {
			t.Errorf("%s x 4 should be identity", name)
		}
	}
}

func TestPeriods(t *testing.T) {
	tests := []struct {
		moves  string
		period int
	}{
		{"", 0},
		{"R", 4},
		{"R U'", 63},
		{"R U R' U'", 6},
		{"M2 U M U2 M' U M2", 3},
		{"R U R' U R' F R F' U2 R' F R F'", 18},
	}

	for _, tt := range tests {
		if got := mustScramble(t, tt.moves).Period(); got != tt.period {
			t.Errorf("period of %q = %d, want %d", tt.moves, got, tt.period)
		}
	}
}

func TestScrambleFaceColors(t *testing.T) {
	const (
		w = cube.White
		g = cube.Green
		r = cube.Red
		y = cube.Yellow
		b = cube.Blue
		o = cube.Orange
	)

	s := mustScramble(t, "U' F' D2 R U2 R' U2 F2 R D2 L2 D2 R' B U' L' B2 D2 B2 U2")

	want := map[cube.Face][9]cube.Color{
		cube.U: {o, b, y, y, w, b, w, r, g},
		cube.F: {r, g, y, y, g, o, w, y, r},
		cube.R: {r, o, o, w, r, o, b, w, o},
		cube.D: {g, g, y, y, y, r, w, b, y},
		cube.B: {b, r, w, g, b, g, g, w, b},
		cube.L: {b, b, g, w, o, r, r, o, o},
	}
	for face, colors := range want {
		if got := s.FaceColors(face); got != colors {
			t.Errorf("%v face = %v, want %v", face, got, colors)
		}
	}
	if t.Failed() {
		t.Log(s.Net())
	}
}

func TestCheckeredPattern(t *testing.T) {
	s := mustScramble(t, "M2 E2 S2")

	for _, face := range cube.Faces {
		colors := s.FaceColors(face)
		own := face.SolvedColor()
		other := face.Opposite().SolvedColor()
		for i, c := range colors {
			want := own
			if i%2 == 1 {
				want = other
			}
			if c != want {
				t.Errorf("%v facelet %d = %v, want %v", face, i, c, want)
			}
		}
	}

	if s.IsSolved() {
		t.Error("checkerboard should not be solved")
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	s := mustScramble(t, strings.Repeat("R U R' U' ", 6))
	if !s.IsSolved0() {
		t.Error("(R U R' U') x 6 should return to solved")
		t.Log(s.Net())
	}
}

func TestApplySequenceUnknownMove(t *testing.T) {
	c := Default()
	start := c.MustLookup("R")

	s, err := c.ApplySequence(start, "U Q2 F")
	if !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove, got %v", err)
	}

	var unknown *UnknownMoveError
	if !errors.As(err, &unknown) || unknown.Token != "Q2" {
		t.Errorf("expected token Q2, got %v", err)
	}
	if s != (cube.State{}) {
		t.Error("no partial state should be returned on error")
	}
}

func TestApplySequenceIgnoresExtraWhitespace(t *testing.T) {
	a := mustScramble(t, "  R   U\tR'\n")
	b := mustScramble(t, "R U R'")
	if a != b {
		t.Error("whitespace should not affect the result")
	}
}

func TestApplySequenceLenientSkipsUnknown(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	c := Default()
	got := c.ApplySequenceLenient(cube.Solved, "R bogus U", logger)
	want := mustScramble(t, "R U")
	if got != want {
		t.Error("lenient apply should skip the unknown token")
	}
	if !strings.Contains(buf.String(), "bogus") {
		t.Errorf("expected a warning naming the token, got %q", buf.String())
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	names, err := c.Validate("R U2 Rw'")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(names) != 3 {
		t.Errorf("got %d names, want 3", len(names))
	}
	if _, err := c.Validate("R X"); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}
}
