package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decode is the inverse of EncodeSequence.  Starting at the root, each '0'
// moves to the left child and each '1' to the right child; reaching a leaf
// emits its symbol and returns to the root.
//
// bits must be exactly a concatenation of codewords: no padding is
// accepted.  Decode fails with ErrMalformedStream on any character other
// than '0' or '1', or if bits ends in the middle of a codeword.
func (t *Tree[S]) Decode(bits Code) ([]S, error) {
	root := t.nodes[t.root]
	if root.IsLeaf() {
		out := make([]S, 0, len(bits))
		for index := 0; index < len(bits); index++ {
			if bits[index] != '0' {
				return nil, fmt.Errorf("%w: unexpected %q at bit %d", ErrMalformedStream, bits[index], index)
			}
			out = append(out, root.Symbol)
		}
		return out, nil
	}

	var out []S
	pos := t.root
	for index := 0; index < len(bits); index++ {
		n := t.nodes[pos]
		switch bits[index] {
		case '0':
			pos = n.Left
		case '1':
			pos = n.Right
		default:
			return nil, fmt.Errorf("%w: unexpected %q at bit %d", ErrMalformedStream, bits[index], index)
		}
		if leaf := t.nodes[pos]; leaf.IsLeaf() {
			out = append(out, leaf.Symbol)
			pos = t.root
		}
	}
	if pos != t.root {
		return nil, fmt.Errorf("%w: input ends inside a codeword", ErrMalformedStream)
	}
	return out, nil
}

// Decoder implements a table-driven decoder for prefix codes.  For every
// prefix of every codeword it knows either the decoded symbol or how many
// more bits could follow.
type Decoder[S comparable] struct {
	table      map[Code]decoderData[S]
	numSymbols int
	minSize    int
	maxSize    int
}

// NewDecoder builds a Decoder for the codewords of ct.
func NewDecoder[S comparable](ct *CodeTable[S]) *Decoder[S] {
	// len(table) is approximately n×log2(n) when filled.
	numSymbols := ct.Len()
	numTableSlots := numSymbols * log2int(numSymbols)

	d := &Decoder[S]{
		table:      make(map[Code]decoderData[S], numTableSlots),
		numSymbols: numSymbols,
		minSize:    ct.MinSize(),
		maxSize:    ct.MaxSize(),
	}
	for _, symbol := range ct.symbols {
		fillTable(d.table, symbol, ct.codes[symbol])
	}
	return d
}

// Decode attempts to decode a codeword into a symbol.
//
// If hc is a complete codeword, ok is true and minSize == maxSize ==
// hc.Len().
//
// If hc is a proper prefix of one or more codewords, ok is false and those
// codewords are between minSize and maxSize bits long.
//
// If hc is not a prefix of any codeword, ok is false and minSize == maxSize
// == 0.
func (d *Decoder[S]) Decode(hc Code) (symbol S, ok bool, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return symbol, false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// NumSymbols returns the size of the alphabet.
func (d *Decoder[S]) NumSymbols() int {
	return d.numSymbols
}

// MinSize is the bit length of the shortest codeword.
func (d *Decoder[S]) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest codeword.
func (d *Decoder[S]) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%v, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData[S comparable] struct {
	symbol  S
	leaf    bool
	minSize int
	maxSize int
}

func fillTable[S comparable](table map[Code]decoderData[S], symbol S, hc Code) {
	dd := decoderData[S]{symbol: symbol, leaf: true, minSize: hc.Len(), maxSize: hc.Len()}
	table[hc] = dd

	for hc.Len() != 0 {
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling),
		// where A = NOT a, into ddNew (the new parent for both).

		ddNew := decoderData[S]{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddSibling, found := table[hc.sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "xxx...a" to "xxx...".

		hc = hc.parent()

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
