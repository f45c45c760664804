package huffman

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to hold x, used as a capacity
// hint for structures that grow with tree depth.
func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return 64 - mathbits.LeadingZeros64(uint64(x))
}
