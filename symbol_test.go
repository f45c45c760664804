package huffman

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	freqs := TallyString("abracadabra")
	expect := Frequencies[rune]{
		{'a', 5},
		{'b', 2},
		{'r', 2},
		{'c', 1},
		{'d', 1},
	}
	assert.Equal(t, expect, freqs)

	assert.Empty(t, Tally([]int(nil)))
}

func TestSortedFrequencies(t *testing.T) {
	freqs := SortedFrequencies(map[string]Weight{"c": 12, "a": 5, "b": 9})
	expect := Frequencies[string]{
		{"a", 5},
		{"b", 9},
		{"c", 12},
	}
	assert.Equal(t, expect, freqs)
}

func TestFrequencies_Total(t *testing.T) {
	total, ok := Frequencies[string]{{"a", 5}, {"b", 9}}.Total()
	assert.True(t, ok)
	assert.Equal(t, Weight(14), total)

	_, ok = Frequencies[string]{{"a", math.MaxUint64}, {"b", 1}}.Total()
	assert.False(t, ok)
}
