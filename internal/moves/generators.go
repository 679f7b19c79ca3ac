package moves

import "github.com/SeamusWaldron/permcube/internal/cube"

// rotationX turns the whole cube the same way as R.
var rotationX = cube.MustFromPermutation([cube.FaceletCount]uint8{
	44, 43, 42, 41, 40, 39, 38, 37, 36,
	0, 1, 2, 3, 4, 5, 6, 7, 8,
	20, 23, 26, 19, 22, 25, 18, 21, 24,
	9, 10, 11, 12, 13, 14, 15, 16, 17,
	35, 34, 33, 32, 31, 30, 29, 28, 27,
	51, 48, 45, 52, 49, 46, 53, 50, 47,
})

// rotationY turns the whole cube the same way as U.
var rotationY = cube.MustFromPermutation([cube.FaceletCount]uint8{
	2, 5, 8, 1, 4, 7, 0, 3, 6,
	45, 46, 47, 48, 49, 50, 51, 52, 53,
	9, 10, 11, 12, 13, 14, 15, 16, 17,
	33, 30, 27, 34, 31, 28, 35, 32, 29,
	18, 19, 20, 21, 22, 23, 24, 25, 26,
	36, 37, 38, 39, 40, 41, 42, 43, 44,
})

// upCycles is the Up face turn: the three side rows F -> L -> B -> R and
// the corner and edge cycles of the Up face itself.
var upCycles = [][]uint8{
	{9, 45, 36, 18},
	{10, 46, 37, 19},
	{11, 47, 38, 20},
	{0, 2, 8, 6},
	{1, 5, 7, 3},
}

// derivation defines a move as a sequence of moves defined before it.
type derivation struct {
	name    string
	formula string
}

// derivations are evaluated in order, so each formula may only use x, y, U
// and names from earlier entries.
var derivations = []derivation{
	{"z", "y y y x y"},

	{"D", "x x U x x"},
	{"R", "z z z U z"},
	{"L", "z U z z z"},
	{"F", "x U x x x"},
	{"B", "x x x U x"},

	{"M", "x x x R L L L"},
	{"E", "y y y U D D D"},
	{"S", "z F F F B"},

	{"Uw", "U E E E"},
	{"Fw", "F S"},
	{"Rw", "R M M M"},
	{"Bw", "B S S S"},
	{"Lw", "L M"},
	{"Dw", "D E"},
}

// baseNames lists every base move. Each gets a plain, double and prime
// catalog entry.
var baseNames = []string{
	"x", "y", "z",
	"U", "F", "R", "D", "B", "L",
	"Uw", "Fw", "Rw", "Dw", "Bw", "Lw",
	"M", "E", "S",
}

// faceTurns are the solver's moves in canonical search order.
var faceTurns = []string{
	"U", "F", "R", "D", "B", "L",
	"U2", "F2", "R2", "D2", "B2", "L2",
	"U'", "F'", "R'", "D'", "B'", "L'",
}
