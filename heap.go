package huffman

import (
	"container/heap"
)

// WeightedNode is a heap entry: a tree node and its weight.
type WeightedNode struct {
	ID     NodeID
	Weight Weight
}

// Heap is a binary min-heap of WeightedNodes keyed by Weight.
//
// Ties are not broken by any secondary key.  A new element moves toward the
// root only while it is strictly lighter than its parent, and a displaced
// root moves toward the leaves only into a strictly lighter child,
// preferring the left child when both children weigh the same.
//
// The zero value is an empty Heap ready to use.  A Heap is not safe for
// concurrent use; each Build owns its own.
type Heap struct {
	list nodeList
}

// NewHeap returns an empty Heap with room for n elements.
func NewHeap(n int) *Heap {
	return &Heap{list: make(nodeList, 0, n)}
}

// Reset discards all elements.
func (h *Heap) Reset() {
	for i := range h.list {
		h.list[i] = WeightedNode{}
	}
	h.list = h.list[:0]
}

// Insert adds node to the heap.
func (h *Heap) Insert(node WeightedNode) {
	heap.Push(&h.list, node)
}

// ExtractMin removes and returns the lightest element.  If the heap is
// empty, ok is false; this is an ordinary outcome, not an error.
func (h *Heap) ExtractMin() (node WeightedNode, ok bool) {
	switch len(h.list) {
	case 0:
		return WeightedNode{}, false
	case 1:
		node = h.list[0]
		h.Reset()
		return node, true
	}
	return heap.Pop(&h.list).(WeightedNode), true
}

// Len returns the number of elements in the heap.
func (h *Heap) Len() int {
	return len(h.list)
}

// type nodeList {{{

type nodeList []WeightedNode

func (list nodeList) Len() int {
	return len(list)
}

func (list nodeList) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list nodeList) Less(i, j int) bool {
	return list[i].Weight < list[j].Weight
}

func (list *nodeList) Push(x interface{}) {
	*list = append(*list, x.(WeightedNode))
}

func (list *nodeList) Pop() interface{} {
	last := len(*list) - 1
	x := (*list)[last]
	(*list)[last] = WeightedNode{}
	*list = (*list)[:last]
	return x
}

var _ heap.Interface = (*nodeList)(nil)

// }}}
