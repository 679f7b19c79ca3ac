package cube

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// FaceletCount is the number of facelet positions on the cube.
	FaceletCount = 54

	// FaceletsPerFace is the number of facelets on one face.
	FaceletsPerFace = 9
)

// ErrInvalidPermutation is returned when raw data is not a bijection on the
// 54 facelet positions.
var ErrInvalidPermutation = errors.New("cube: invalid permutation")

// State is a permutation of the 54 facelet positions. It describes either a
// cube configuration or the effect of a move.
//
// p[i] is the position that the facelet starting at position i has moved
// to. Faces occupy contiguous blocks of nine positions in the order
// U, F, R, D, B, L.
//
// State is a comparable value type: assignment copies it and == compares
// all 54 entries.
type State struct {
	p [FaceletCount]uint8
}

// Solved is the identity permutation.
var Solved = Identity()

// Identity returns the solved state.
func Identity() State {
	var s State
	for i := range s.p {
		s.p[i] = uint8(i)
	}
	return s
}

// FromPermutation builds a state from raw values, rejecting anything that is
// not a bijection on [0, 54).
func FromPermutation(values [FaceletCount]uint8) (State, error) {
	var seen [FaceletCount]bool
	for i, v := range values {
		if int(v) >= FaceletCount {
			return State{}, fmt.Errorf("%w: value %d at index %d out of range", ErrInvalidPermutation, v, i)
		}
		if seen[v] {
			return State{}, fmt.Errorf("%w: value %d repeated at index %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
	}
	return State{p: values}, nil
}

// MustFromPermutation is like FromPermutation but panics on invalid input.
// It is intended for hard-coded tables.
func MustFromPermutation(values [FaceletCount]uint8) State {
	s, err := FromPermutation(values)
	if err != nil {
		panic(err)
	}
	return s
}

// Permutation returns a copy of the raw permutation.
func (s State) Permutation() [FaceletCount]uint8 {
	return s.p
}

// At returns where the facelet starting at position i has moved to.
func (s State) At(i int) uint8 {
	return s.p[i]
}

// Apply returns the state reached by performing s and then other.
// Sequences compose left to right: a.Apply(b).Apply(c) is "a b c".
func (s State) Apply(other State) State {
	var out State
	for i := range out.p {
		out.p[i] = other.p[s.p[i]]
	}
	return out
}

// Invert returns the state inv such that s.Apply(inv) is the identity.
func (s State) Invert() State {
	var out State
	for i, v := range s.p {
		out.p[v] = uint8(i)
	}
	return out
}

// Equal reports whether both states hold identical permutations.
func (s State) Equal(other State) bool {
	return s == other
}

// Pow applies s to itself n times. Pow(0) is the identity.
func (s State) Pow(n int) State {
	out := Identity()
	for i := 0; i < n; i++ {
		out = out.Apply(s)
	}
	return out
}

// String returns the permutation as 54 comma-separated integers.
func (s State) String() string {
	parts := make([]string, FaceletCount)
	for i, v := range s.p {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

// ParseState parses the format produced by String.
func ParseState(text string) (State, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != FaceletCount {
		return State{}, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidPermutation, FaceletCount, len(parts))
	}

	var values [FaceletCount]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return State{}, fmt.Errorf("%w: bad value %q at index %d", ErrInvalidPermutation, part, i)
		}
		values[i] = uint8(v)
	}

	return FromPermutation(values)
}
