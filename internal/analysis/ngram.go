// Package analysis mines recurring move patterns from solver output.
package analysis

import (
	"sort"
	"strings"
)

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// NGram is a move sequence that appears more than once.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// String returns the sequence in move notation.
func (g NGram) String() string {
	return strings.Join(g.Sequence, " ")
}

// NGramOccurrence records where an n-gram was found.
type NGramOccurrence struct {
	SolutionID string `json:"solution_id,omitempty"`
	StartIndex int    `json:"start_index"`
}

// NGramReport holds the top n-grams for each window size.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// Sizes returns the window sizes present in the report, smallest first.
func (r *NGramReport) Sizes() []int {
	sizes := make([]int, 0, len(r.TopNGrams))
	for n := range r.TopNGrams {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes
}

// Sequence is one solution's moves, tagged with the solution it came from.
type Sequence struct {
	ID    string
	Moves []string
}

// rollingHash is a Rabin-Karp hash over a fixed window of move tokens.
type rollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64
	window []uint16
	n      int
}

func newRollingHash(n int) *rollingHash {
	rh := &rollingHash{
		base:   131,
		n:      n,
		window: make([]uint16, 0, n),
		pow:    1,
	}
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

func (rh *rollingHash) roll(token uint16) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

func (rh *rollingHash) ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint16
	count       int
	first       int
	occurrences []NGramOccurrence
}

// tokenizer assigns each distinct move name a small integer.
type tokenizer struct {
	ids   map[string]uint16
	names []string
}

func (t *tokenizer) id(name string) uint16 {
	if id, ok := t.ids[name]; ok {
		return id
	}
	// Zero is never handed out so a leading token always changes the hash.
	t.names = append(t.names, name)
	id := uint16(len(t.names))
	t.ids[name] = id
	return id
}

// MineNGrams finds the topK most frequent n-grams for every n in
// [minN, maxN]. Windows never span two sequences, and only n-grams seen at
// least twice are reported. Ties keep the order of first appearance.
func MineNGrams(seqs []Sequence, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 || topK < 1 {
		return report
	}

	tok := &tokenizer{ids: make(map[string]uint16)}
	encoded := make([][]uint16, len(seqs))
	for i, seq := range seqs {
		encoded[i] = make([]uint16, len(seq.Moves))
		for j, name := range seq.Moves {
			encoded[i][j] = tok.id(name)
		}
	}

	for n := minN; n <= maxN; n++ {
		if ngrams := mineN(seqs, encoded, tok, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineN(seqs []Sequence, encoded [][]uint16, tok *tokenizer, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order int

	for i, tokens := range encoded {
		rh := newRollingHash(n)
		for j, token := range tokens {
			rh.roll(token)
			if !rh.ready() {
				continue
			}

			occ := NGramOccurrence{SolutionID: seqs[i].ID, StartIndex: j - n + 1}
			entry := findEntry(counts[rh.hash], rh.window)
			if entry == nil {
				entry = &ngramEntry{tokens: append([]uint16(nil), rh.window...), first: order}
				counts[rh.hash] = append(counts[rh.hash], entry)
				order++
			}
			entry.count++
			if len(entry.occurrences) < maxOccurrences {
				entry.occurrences = append(entry.occurrences, occ)
			}
		}
	}

	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, entry := range bucket {
			if entry.count >= 2 {
				entries = append(entries, entry)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		sequence := make([]string, len(entry.tokens))
		for j, token := range entry.tokens {
			sequence[j] = tok.names[token-1]
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}
	return result
}

// findEntry resolves hash collisions by comparing the windows.
func findEntry(bucket []*ngramEntry, window []uint16) *ngramEntry {
	for _, entry := range bucket {
		if slicesEqual(entry.tokens, window) {
			return entry
		}
	}
	return nil
}

func slicesEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
