package cube

import "fmt"

// FromCycle returns the state that moves positions[0] to positions[1],
// positions[1] to positions[2], and so on, with the last position moving to
// the first. Every other position is fixed. An empty cycle is the identity.
//
// FromCycle panics if a position is out of range or repeated.
func FromCycle(positions ...uint8) State {
	s := Identity()
	var seen [FaceletCount]bool
	for i, pos := range positions {
		if int(pos) >= FaceletCount || seen[pos] {
			panic(fmt.Sprintf("cube: bad cycle position %d in %v", pos, positions))
		}
		seen[pos] = true
		s.p[pos] = positions[(i+1)%len(positions)]
	}
	return s
}

// ProductOfCycles composes one cycle state per entry, left to right.
func ProductOfCycles(cycles [][]uint8) State {
	s := Identity()
	for _, c := range cycles {
		s = s.Apply(FromCycle(c...))
	}
	return s
}

// Cycles decomposes the permutation into disjoint cycles of length two or
// more. Cycles are listed in order of their lowest position, and each cycle
// starts at that position and follows where it moves.
func (s State) Cycles() [][]uint8 {
	var visited [FaceletCount]bool
	var cycles [][]uint8

	for i := 0; i < FaceletCount; i++ {
		if visited[i] || int(s.p[i]) == i {
			continue
		}

		var cycle []uint8
		for j := uint8(i); !visited[j]; j = s.p[j] {
			visited[j] = true
			cycle = append(cycle, j)
		}
		cycles = append(cycles, cycle)
	}

	return cycles
}

// Period returns how many times the state must be repeated to get back to
// the identity. The identity itself has period 0.
func (s State) Period() int {
	period := 0
	for _, c := range s.Cycles() {
		period = lcm(period, len(c))
	}
	return period
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm treats 0 as the empty product.
func lcm(a, b int) int {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	return a / gcd(a, b) * b
}
