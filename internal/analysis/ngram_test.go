package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func seq(id, moves string) Sequence {
	return Sequence{ID: id, Moves: strings.Fields(moves)}
}

func TestMineNGramsAcrossSolutions(t *testing.T) {
	seqs := []Sequence{
		seq("a", "R U R' U' R U R' U'"),
		seq("b", "F R U R' U' F'"),
	}

	report := MineNGrams(seqs, 4, 4, 5)
	require.Equal(t, []int{4}, report.Sizes())

	top := report.TopNGrams[4]
	require.Len(t, top, 1)
	require.Equal(t, "R U R' U'", top[0].String())
	require.Equal(t, 3, top[0].Count)
	require.Equal(t, []NGramOccurrence{
		{SolutionID: "a", StartIndex: 0},
		{SolutionID: "a", StartIndex: 4},
		{SolutionID: "b", StartIndex: 1},
	}, top[0].Occurrences)
}

func TestMineNGramsTopKKeepsFirstSeenOnTies(t *testing.T) {
	seqs := []Sequence{
		seq("a", "R U R' U' R U R' U'"),
		seq("b", "F R U R' U' F'"),
	}

	top := MineNGrams(seqs, 2, 2, 2).TopNGrams[2]
	require.Len(t, top, 2)
	require.Equal(t, "R U", top[0].String())
	require.Equal(t, "U R'", top[1].String())
}

func TestMineNGramsDoesNotSpanSequences(t *testing.T) {
	seqs := []Sequence{seq("a", "R"), seq("b", "U"), seq("c", "R"), seq("d", "U")}
	report := MineNGrams(seqs, 2, 3, 5)
	require.Empty(t, report.TopNGrams)
}

func TestMineNGramsBadBounds(t *testing.T) {
	seqs := []Sequence{seq("a", "R R R R")}
	require.Empty(t, MineNGrams(seqs, 0, 2, 5).TopNGrams)
	require.Empty(t, MineNGrams(seqs, 1, 2, 0).TopNGrams)
}
