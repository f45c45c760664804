package huffman

import (
	"cmp"
	"slices"
)

// Weight is the frequency (or summed frequency) of a node.
type Weight uint64

// Frequency pairs a symbol with its number of occurrences.
type Frequency[S comparable] struct {
	Symbol S
	Count  Weight
}

// Frequencies is an ordered frequency table.  The order matters: it is the
// heap insertion order, which decides how ties between equal weights are
// broken.
type Frequencies[S comparable] []Frequency[S]

// Total returns the sum of all counts, and false if that sum overflows.
func (freqs Frequencies[S]) Total() (Weight, bool) {
	var total Weight
	for _, f := range freqs {
		sum := total + f.Count
		if sum < total {
			return 0, false
		}
		total = sum
	}
	return total, true
}

// Tally counts the symbols of seq.  Symbols appear in the result in order of
// first occurrence.
func Tally[S comparable](seq []S) Frequencies[S] {
	index := make(map[S]int)
	var freqs Frequencies[S]
	for _, s := range seq {
		i, found := index[s]
		if !found {
			i = len(freqs)
			index[s] = i
			freqs = append(freqs, Frequency[S]{Symbol: s})
		}
		freqs[i].Count++
	}
	return freqs
}

// TallyString counts the runes of text, in order of first occurrence.
func TallyString(text string) Frequencies[rune] {
	return Tally([]rune(text))
}

// SortedFrequencies converts a map-shaped table into Frequencies sorted by
// symbol, giving map input a deterministic insertion order.
func SortedFrequencies[S cmp.Ordered](m map[S]Weight) Frequencies[S] {
	freqs := make(Frequencies[S], 0, len(m))
	for s, n := range m {
		freqs = append(freqs, Frequency[S]{Symbol: s, Count: n})
	}
	slices.SortFunc(freqs, func(a, b Frequency[S]) int {
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return freqs
}
