// Package huffman builds Huffman codes from symbol frequencies and uses them
// to encode and decode symbol sequences.
//
// A Tree is built from an ordered frequency table by repeatedly merging the
// two lightest nodes of a min-heap.  Ties between equal weights are broken
// only by heap order, so the same table in the same order always produces
// the same tree.  Codewords are strings of '0' and '1' characters; a
// CodeTable materializes every codeword at once for fast repeated encoding.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
package huffman
