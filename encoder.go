package huffman

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// EncodeSymbol returns the codeword for symbol by walking down from the
// root, stepping left ('0') or right ('1') toward whichever subtree holds
// the symbol.  A Tree with a single symbol encodes it as "0".
//
// EncodeSymbol fails with ErrLookupFailure if symbol is not in the alphabet.
// For repeated encoding, use CodeTable instead.
func (t *Tree[S]) EncodeSymbol(symbol S) (Code, error) {
	leaf, found := t.leaves[symbol]
	if !found {
		return "", fmt.Errorf("%w: %v", ErrLookupFailure, symbol)
	}
	if leaf == t.root {
		return "0", nil
	}

	var sb strings.Builder
	pos := t.root
	for pos != leaf {
		n := t.nodes[pos]
		switch {
		case t.contains(n.Left, leaf):
			sb.WriteByte('0')
			pos = n.Left
		case t.contains(n.Right, leaf):
			sb.WriteByte('1')
			pos = n.Right
		default:
			return "", fmt.Errorf("%w: %v not reachable from node %d", ErrLookupFailure, symbol, pos)
		}
	}
	return Code(sb.String()), nil
}

// EncodeSequence concatenates the codewords of every symbol in seq.
func (t *Tree[S]) EncodeSequence(seq []S) (Code, error) {
	var sb strings.Builder
	for _, symbol := range seq {
		hc, err := t.EncodeSymbol(symbol)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(hc))
	}
	return Code(sb.String()), nil
}

// CodeTable maps every symbol of an alphabet to its codeword.
type CodeTable[S comparable] struct {
	symbols []S
	codes   map[S]Code
	minSize int
	maxSize int
}

// CodeTable labels every leaf with its path from the root in a single walk.
func (t *Tree[S]) CodeTable() *CodeTable[S] {
	numSymbols := len(t.leaves)
	ct := &CodeTable[S]{
		symbols: t.Symbols(),
		codes:   make(map[S]Code, numSymbols),
	}

	if t.nodes[t.root].IsLeaf() {
		ct.codes[t.nodes[t.root].Symbol] = "0"
		ct.minSize, ct.maxSize = 1, 1
		return ct
	}

	t.walk(
		func(id NodeID, path []byte) {
			n := t.nodes[id]
			if !n.IsLeaf() {
				return
			}
			ct.codes[n.Symbol] = Code(path)
			size := len(path)
			if ct.minSize == 0 || ct.minSize > size {
				ct.minSize = size
			}
			if ct.maxSize < size {
				ct.maxSize = size
			}
		},
		func(NodeID) {})

	assert.Assertf(len(ct.codes) == numSymbols, "labelled %d leaves, expected %d", len(ct.codes), numSymbols)
	return ct
}

// Lookup returns the codeword for symbol.
func (ct *CodeTable[S]) Lookup(symbol S) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Encode returns the codeword for symbol, failing with ErrLookupFailure if
// symbol is not in the alphabet.
func (ct *CodeTable[S]) Encode(symbol S) (Code, error) {
	hc, found := ct.codes[symbol]
	if !found {
		return "", fmt.Errorf("%w: %v", ErrLookupFailure, symbol)
	}
	return hc, nil
}

// EncodeSequence concatenates the codewords of every symbol in seq.
func (ct *CodeTable[S]) EncodeSequence(seq []S) (Code, error) {
	var sb strings.Builder
	for _, symbol := range seq {
		hc, err := ct.Encode(symbol)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(hc))
	}
	return Code(sb.String()), nil
}

// EncodedLen returns the number of bits needed to encode a sequence with
// the given symbol counts.
func (ct *CodeTable[S]) EncodedLen(freqs Frequencies[S]) (uint64, error) {
	var total uint64
	for _, f := range freqs {
		hc, err := ct.Encode(f.Symbol)
		if err != nil {
			return 0, err
		}
		total += uint64(f.Count) * uint64(hc.Len())
	}
	return total, nil
}

// Len returns the number of symbols in the alphabet.
func (ct *CodeTable[S]) Len() int {
	return len(ct.symbols)
}

// Symbols returns the alphabet in frequency table order.
func (ct *CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.symbols))
	copy(out, ct.symbols)
	return out
}

// MinSize is the bit length of the shortest codeword.
func (ct *CodeTable[S]) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct *CodeTable[S]) MaxSize() int {
	return ct.maxSize
}

// SizeBySymbol returns the bit length of each codeword, in the order of
// Symbols().
func (ct *CodeTable[S]) SizeBySymbol() []int {
	out := make([]int, len(ct.symbols))
	for index, symbol := range ct.symbols {
		out[index] = ct.codes[symbol].Len()
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.symbols {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Canonical returns a CodeTable that gives every symbol a codeword of the
// same length as in ct, but assigned canonically: symbols sorted by
// (length, symbol) receive consecutive codes.  A canonical code can be
// rebuilt from the lengths alone.
func Canonical[S cmp.Ordered](ct *CodeTable[S]) *CodeTable[S] {
	out := &CodeTable[S]{
		symbols: ct.Symbols(),
		codes:   make(map[S]Code, len(ct.codes)),
		minSize: ct.minSize,
		maxSize: ct.maxSize,
	}

	if len(ct.symbols) == 1 {
		out.codes[ct.symbols[0]] = "0"
		return out
	}

	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize[S], 0, len(ct.symbols))
	for _, symbol := range ct.symbols {
		sorted = append(sorted, symbolAndSize[S]{symbol, ct.codes[symbol].Len()})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
	//
	// The running code is kept as a bit slice, since a skewed alphabet can
	// produce codewords far longer than any machine word.

	next := make([]byte, sorted[0].size)
	for index := range next {
		next[index] = '0'
	}
	for index, item := range sorted {
		for len(next) < item.size {
			next = append(next, '0')
		}
		out.codes[item.symbol] = Code(next)
		if index+1 < len(sorted) {
			ok := incrementBits(next)
			assert.Assertf(ok, "canonical code overflowed at %d bits", len(next))
		}
	}
	return out
}

// incrementBits adds one to the binary number held in bits, in place.  It
// returns false if the result does not fit.
func incrementBits(bits []byte) bool {
	for index := len(bits) - 1; index >= 0; index-- {
		if bits[index] == '0' {
			bits[index] = '1'
			return true
		}
		bits[index] = '0'
	}
	return false
}

// type symbolAndSize + type bySize {{{

type symbolAndSize[S cmp.Ordered] struct {
	symbol S
	size   int
}

type bySize[S cmp.Ordered] []symbolAndSize[S]

func (list bySize[S]) Len() int {
	return len(list)
}

func (list bySize[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize[S]) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize[S]) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize[int](nil)

// }}}
