package feistel

import "math/bits"

// Word is the set of unsigned integer types usable as blocks, halves and keys.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of T in bits.
func Bits[T Word]() int {
	return bits.Len64(uint64(^T(0)))
}

// Split returns the high and low halves of block.
// H is expected to be exactly half as wide as B.
func Split[B, H Word](block B) (high, low H) {
	return H(uint64(block) >> Bits[H]()), H(block)
}

// Join places high in the upper half and low in the lower half of a block.
func Join[B, H Word](high, low H) B {
	return B(uint64(high)<<Bits[H]() | uint64(low))
}
