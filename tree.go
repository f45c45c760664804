package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within one Tree.
type NodeID int32

// NoNode marks an absent child.
const NoNode = NodeID(-1)

// maxSymbols keeps every NodeID of a full binary tree within int32.
const maxSymbols = (math.MaxInt32 + 1) / 2

// Node is one entry of a Tree.  Leaves have Left == Right == NoNode and
// carry their Symbol; synthetic nodes carry the zero Symbol.
type Node[S comparable] struct {
	Weight Weight
	Left   NodeID
	Right  NodeID
	Symbol S
}

// IsLeaf reports whether this Node is an original symbol.
func (n Node[S]) IsLeaf() bool {
	return n.Left == NoNode
}

// Tree is a Huffman tree stored as an arena of Nodes.
//
// Leaves occupy ids 0 .. NumSymbols()-1 in frequency table order.  Synthetic
// nodes follow in the order they were merged, so the root is always the
// last node.  A Tree is immutable once built and may be shared between
// goroutines.
type Tree[S comparable] struct {
	nodes  []Node[S]
	spans  []leafSpan
	leaves map[S]NodeID
	root   NodeID
}

// leafSpan is the half-open range of leaf ordinals, in left-to-right order,
// covered by a subtree.
type leafSpan struct {
	lo int32
	hi int32
}

// Build constructs the Huffman tree for freqs.
//
// Every symbol becomes a leaf and is inserted into a fresh Heap in table
// order.  While two or more nodes remain, the two lightest are extracted
// (a first, then b) and replaced by a synthetic node whose left child is a
// and whose right child is b.  The last node standing is the root.
//
// Build fails with ErrInvalidInput if freqs is empty, holds a zero count or
// a repeated symbol, or if its total weight overflows.
func Build[S comparable](freqs Frequencies[S]) (*Tree[S], error) {
	numSymbols := len(freqs)
	if numSymbols == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidInput)
	}
	if numSymbols > maxSymbols {
		return nil, fmt.Errorf("%w: %d symbols, max %d", ErrInvalidInput, numSymbols, maxSymbols)
	}

	total, ok := freqs.Total()
	if !ok {
		return nil, fmt.Errorf("%w: total weight overflows", ErrInvalidInput)
	}

	leaves := make(map[S]NodeID, numSymbols)
	for index, f := range freqs {
		if f.Count == 0 {
			return nil, fmt.Errorf("%w: symbol %v has a count of 0", ErrInvalidInput, f.Symbol)
		}
		if _, found := leaves[f.Symbol]; found {
			return nil, fmt.Errorf("%w: symbol %v appears more than once", ErrInvalidInput, f.Symbol)
		}
		leaves[f.Symbol] = NodeID(index)
	}

	// Step 1: one leaf per symbol, inserted into the heap in table order.

	nodes := make([]Node[S], 0, 2*numSymbols-1)
	h := NewHeap(numSymbols)
	for index, f := range freqs {
		nodes = append(nodes, Node[S]{Weight: f.Count, Left: NoNode, Right: NoNode, Symbol: f.Symbol})
		h.Insert(WeightedNode{ID: NodeID(index), Weight: f.Count})
	}

	// Step 2: merge the two lightest nodes until one remains.  The sum
	// cannot overflow, since no node outweighs the table total.

	for h.Len() >= 2 {
		a, _ := h.ExtractMin()
		b, _ := h.ExtractMin()

		id := NodeID(len(nodes))
		weight := a.Weight + b.Weight
		nodes = append(nodes, Node[S]{Weight: weight, Left: a.ID, Right: b.ID})
		h.Insert(WeightedNode{ID: id, Weight: weight})
	}

	// Step 3: the survivor is the root.

	last, ok := h.ExtractMin()
	assert.Assertf(ok, "heap drained before a root was found")
	assert.Assertf(h.Len() == 0, "heap still holds %d nodes after the root", h.Len())
	assert.Assertf(last.ID == NodeID(len(nodes)-1), "root %d is not the last node %d", last.ID, len(nodes)-1)
	assert.Assertf(last.Weight == total, "root weight %d != total weight %d", last.Weight, total)

	t := &Tree[S]{
		nodes:  nodes,
		spans:  make([]leafSpan, len(nodes)),
		leaves: leaves,
		root:   last.ID,
	}
	t.labelSpans()
	return t, nil
}

// Root returns the id of the root node.
func (t *Tree[S]) Root() NodeID {
	return t.root
}

// Node returns the node with the given id.
func (t *Tree[S]) Node(id NodeID) Node[S] {
	return t.nodes[id]
}

// Nodes returns a copy of every node, indexed by NodeID.
func (t *Tree[S]) Nodes() []Node[S] {
	out := make([]Node[S], len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Len returns the number of nodes, leaves and synthetic nodes together.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// NumSymbols returns the size of the alphabet.
func (t *Tree[S]) NumSymbols() int {
	return len(t.leaves)
}

// Weight returns the weight of the root, which is the sum of all counts.
func (t *Tree[S]) Weight() Weight {
	return t.nodes[t.root].Weight
}

// Leaf returns the id of the leaf holding symbol.
func (t *Tree[S]) Leaf(symbol S) (NodeID, bool) {
	id, found := t.leaves[symbol]
	return id, found
}

// Symbols returns the alphabet in frequency table order.
func (t *Tree[S]) Symbols() []S {
	out := make([]S, len(t.leaves))
	for index := range out {
		out[index] = t.nodes[index].Symbol
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for id, n := range t.nodes {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = {%d, leaf %v}\n", id, n.Weight, n.Symbol)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = {%d, %d, %d}\n", id, n.Weight, n.Left, n.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// contains reports whether leaf lies in the subtree rooted at id.
func (t *Tree[S]) contains(id NodeID, leaf NodeID) bool {
	if id == NoNode {
		return false
	}
	span := t.spans[id]
	ordinal := t.spans[leaf].lo
	return span.lo <= ordinal && ordinal < span.hi
}

// labelSpans numbers the leaves from left to right and records, for every
// node, the range of leaf numbers beneath it.
func (t *Tree[S]) labelSpans() {
	var next int32
	t.walk(
		func(id NodeID, _ []byte) {
			t.spans[id].lo = next
			if t.nodes[id].IsLeaf() {
				next++
			}
		},
		func(id NodeID) {
			t.spans[id].hi = next
		})
	assert.Assertf(int(next) == len(t.leaves), "walk reached %d leaves, expected %d", next, len(t.leaves))
}

// walk visits every node depth first, left subtree before right.  enter is
// called when a node is first reached, along with the path of '0' and '1'
// steps from the root; the path is only valid during the call.  leave is
// called once the node's subtrees are finished.
func (t *Tree[S]) walk(enter func(id NodeID, path []byte), leave func(id NodeID)) {
	// The stack holds synthetic nodes only.  stackItem.x tracks progress:
	//   x=0 → Neither child visited yet
	//   x=1 → Left child visited
	//   x=2 → Both children visited

	type stackItem struct {
		id NodeID
		x  byte
	}

	depthHint := log2int(len(t.nodes))
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	visit := func(id NodeID) {
		enter(id, path)
		n := t.nodes[id]
		if n.IsLeaf() {
			leave(id)
			return
		}
		assert.Assertf(n.Right != NoNode, "node %d has a left child but no right child", id)
		stack = append(stack, stackItem{id: id})
	}

	visit(t.root)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			path = append(path, '0')
			visit(t.nodes[top.id].Left)
		case 1:
			path[len(path)-1] = '1'
			visit(t.nodes[top.id].Right)
		case 2:
			id := top.id
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			leave(id)
		}
	}
}
