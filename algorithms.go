package permcube

// Well known sequences, written in standard notation.
//
// Example:
//
//	s, _ := permcube.Scramble(permcube.TPerm)
var (
	// SexyMove is one of the most common triggers. It has period 6.
	SexyMove = "R U R' U'"

	// InverseSexyMove is the mirror trigger.
	InverseSexyMove = "U R U' R'"

	// TPerm swaps two edges and two corners on the top layer.
	TPerm = "R U R' U' R' F R2 U' R' U' R U R' F'"

	// UPerm cycles three top edges using slice moves.
	UPerm = "M2 U M U2 M' U M2"

	// Checkerboard puts the opposite color on every edge of every face.
	Checkerboard = "M2 E2 S2"

	// Superflip flips all twelve edges in place.
	Superflip = "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"
)
