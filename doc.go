// Package permcube models the 3x3x3 cube as a permutation of its 54
// facelets and searches for short face-turn solutions.
//
// # Features
//
//   - Cube states as permutations, with composition, inverse and powers
//   - Cycle decomposition and period (order) of any state
//   - A move catalog derived from the x, y and U generators
//   - Iterative-deepening search over face turns
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	state, err := permcube.Scramble("R U R' F2 D2 L")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := permcube.Solve(ctx, state, permcube.WithMaxDepth(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Moves) // [L' D2 F2 R U' R']
//
// # Algorithms
//
// A few well known sequences are provided as notation strings:
//
//	s, _ := permcube.Scramble(permcube.SexyMove)
//	fmt.Println(s.Period()) // 6
//
// # Notation
//
// Sequences are whitespace separated tokens. Face turns are U F R D B L,
// slices are M E S, rotations are x y z and wide turns are Uw or u and so
// on. A suffix of 2 means a half turn and ' means counter-clockwise.
package permcube
