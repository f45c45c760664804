package huffman

import (
	"errors"
)

// ErrInvalidInput is returned by Build when the frequency table is empty,
// holds a zero count or a duplicate symbol, or sums past the range of Weight.
var ErrInvalidInput = errors.New("huffman: invalid frequency table")

// ErrLookupFailure is returned when asked to encode a symbol that is not in
// the alphabet the tree was built from.
var ErrLookupFailure = errors.New("huffman: symbol not in alphabet")

// ErrMalformedStream is returned when a bit string is not a concatenation of
// whole codewords.
var ErrMalformedStream = errors.New("huffman: malformed bit stream")
