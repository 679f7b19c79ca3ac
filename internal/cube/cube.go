// Package cube provides a 3x3 Rubik's cube model where both cube
// configurations and moves are permutations of the 54 facelet positions.
package cube

import "strings"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Green  Color = 1 // Front face when solved
	Red    Color = 2 // Right face when solved
	Yellow Color = 3 // Down face when solved
	Blue   Color = 4 // Back face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Green:
		return "G"
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face. The numeric value is the face's block index
// in the facelet layout: face f owns positions f*9 through f*9+8.
type Face int

const (
	U Face = 0 // Up (White)
	F Face = 1 // Front (Green)
	R Face = 2 // Right (Red)
	D Face = 3 // Down (Yellow)
	B Face = 4 // Back (Blue)
	L Face = 5 // Left (Orange)
)

// Faces lists every face in facelet layout order.
var Faces = [6]Face{U, F, R, D, B, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case F:
		return "F"
	case R:
		return "R"
	case D:
		return "D"
	case B:
		return "B"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case F:
		return B
	case B:
		return F
	case R:
		return L
	case L:
		return R
	default:
		return f
	}
}

// ParseFace converts a face letter into a Face.
func ParseFace(c byte) (Face, bool) {
	switch c {
	case 'U':
		return U, true
	case 'F':
		return F, true
	case 'R':
		return R, true
	case 'D':
		return D, true
	case 'B':
		return B, true
	case 'L':
		return L, true
	default:
		return 0, false
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// positionColor returns the solved color of the facelet that starts at pos.
func positionColor(pos uint8) Color {
	return Color(pos / FaceletsPerFace)
}

// FaceColors returns the colors of a face's nine facelets in row-major
// order as seen when looking at that face:
//
//	0 1 2
//	3 4 5
//	6 7 8
func (s State) FaceColors(f Face) [9]Color {
	inv := s.Invert()
	var colors [9]Color
	base := int(f) * FaceletsPerFace
	for i := 0; i < FaceletsPerFace; i++ {
		colors[i] = positionColor(inv.p[base+i])
	}
	return colors
}

// IsSolved reports whether every face shows a single color. Unlike
// IsSolved0 it accepts states reached with whole-cube rotations and slice
// moves, which move the centers.
func (s State) IsSolved() bool {
	inv := s.Invert()
	// Checking five faces is enough; the sixth has no other colors left.
	for _, f := range Faces[:5] {
		base := int(f) * FaceletsPerFace
		center := positionColor(inv.p[base+4])
		for i := 0; i < FaceletsPerFace; i++ {
			if positionColor(inv.p[base+i]) != center {
				return false
			}
		}
	}
	return true
}

// IsSolved0 reports whether the state is exactly the identity. It is much
// faster than IsSolved but only correct when the centers were never moved,
// i.e. the state was built from face turns alone.
func (s State) IsSolved0() bool {
	return s == Solved
}

// Net returns a text representation of the cube unfolded as:
//
//	      U
//	L F R B
//	      D
func (s State) Net() string {
	var b strings.Builder

	faces := make(map[Face][9]Color, 6)
	for _, f := range Faces {
		faces[f] = s.FaceColors(f)
	}

	writeRow := func(f Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(faces[f][row*3+col].String())
			b.WriteString(" ")
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(U, row)
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, f := range []Face{L, F, R, B} {
			writeRow(f, row)
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(D, row)
		b.WriteString("\n")
	}

	return b.String()
}
