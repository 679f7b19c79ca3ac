package moves

import (
	"strings"

	"github.com/SeamusWaldron/permcube/internal/cube"
)

// Turn represents the direction and magnitude of a move.
type Turn int

const (
	TurnCW     Turn = 1  // Clockwise quarter turn
	TurnCCW    Turn = -1 // Counter-clockwise quarter turn
	TurnDouble Turn = 2  // Half turn
)

// Token is a parsed move token such as R, Rw2 or x'.
type Token struct {
	Base string // Base move name, e.g. "R", "Rw", "M", "x"
	Turn Turn
}

// ParseToken parses a single move token. Wide moves may be written either
// as Rw or r; both parse to Base "Rw".
// Examples: R, R', R2, Rw, r', M2, x
func ParseToken(s string) (Token, bool) {
	if len(s) == 0 {
		return Token{}, false
	}

	turn := TurnCW
	switch {
	case strings.HasSuffix(s, "'"):
		turn = TurnCCW
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "2"):
		turn = TurnDouble
		s = s[:len(s)-1]
	}

	var base string
	switch s {
	case "U", "F", "R", "D", "B", "L",
		"M", "E", "S",
		"x", "y", "z",
		"Uw", "Fw", "Rw", "Dw", "Bw", "Lw":
		base = s
	case "u", "f", "r", "d", "b", "l":
		base = strings.ToUpper(s) + "w"
	default:
		return Token{}, false
	}

	return Token{Base: base, Turn: turn}, true
}

// Notation returns the standard notation string for this token.
func (t Token) Notation() string {
	switch t.Turn {
	case TurnCCW:
		return t.Base + "'"
	case TurnDouble:
		return t.Base + "2"
	default:
		return t.Base
	}
}

// String returns the notation string (alias for Notation).
func (t Token) String() string {
	return t.Notation()
}

// Inverse returns the token that undoes this one.
func (t Token) Inverse() Token {
	inv := t
	switch t.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// TurnDouble is its own inverse
	}
	return inv
}

// Face returns the outer face a face turn or wide turn moves. Rotations
// and slice moves have no face.
func (t Token) Face() (cube.Face, bool) {
	if len(t.Base) == 0 || t.Base == "M" || t.Base == "E" || t.Base == "S" {
		return 0, false
	}
	return cube.ParseFace(t.Base[0])
}

// FaceOf returns the face turned by a move name, using its first letter.
func FaceOf(name string) (cube.Face, bool) {
	if len(name) == 0 {
		return 0, false
	}
	return cube.ParseFace(name[0])
}

// InvertSequence returns the sequence that undoes text: the tokens in
// reverse order, each inverted. Tokens that do not parse are reported via
// ok=false.
func InvertSequence(text string) (string, bool) {
	parts := strings.Fields(text)
	out := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		tok, ok := ParseToken(parts[i])
		if !ok {
			return "", false
		}
		out = append(out, tok.Inverse().Notation())
	}
	return strings.Join(out, " "), true
}

// FormatSequence joins move names with single spaces.
func FormatSequence(names []string) string {
	return strings.Join(names, " ")
}
