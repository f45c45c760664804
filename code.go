package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Valid reports whether every character of this Code is '0' or '1'.
func (hc Code) Valid() bool {
	return strings.Trim(string(hc), "01") == ""
}

// HasPrefix reports whether prefix is a leading run of bits of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) bool {
	return hc[i] == '1'
}

// String returns the quoted representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// sibling returns the Code that differs from hc only in its last bit.
func (hc Code) sibling() Code {
	last := len(hc) - 1
	flipped := byte('0')
	if hc[last] == '0' {
		flipped = '1'
	}
	return hc[:last] + Code(flipped)
}

// parent returns hc with its last bit removed.
func (hc Code) parent() Code {
	return hc[:len(hc)-1]
}
