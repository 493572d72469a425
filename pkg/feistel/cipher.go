package feistel

import "crypto/cipher"

// Cipher binds an Engine to a key and exposes it as a crypto/cipher.Block.
// Blocks are read from and written to byte slices in big-endian order.
type Cipher[B, H, K Word] struct {
	engine *Engine[B, H, K]
	key    K
}

var _ cipher.Block = (*Cipher[uint16, uint8, uint8])(nil)

// NewCipher returns a cipher.Block that encrypts with engine under key.
func NewCipher[B, H, K Word](engine *Engine[B, H, K], key K) *Cipher[B, H, K] {
	return &Cipher[B, H, K]{engine: engine, key: key}
}

// BlockSize returns the block size in bytes.
func (c *Cipher[B, H, K]) BlockSize() int {
	return Bits[B]() / 8 //nolint:mnd
}

// Encrypt encrypts the first block in src into dst.
func (c *Cipher[B, H, K]) Encrypt(dst, src []byte) {
	size := c.BlockSize()

	if len(src) < size {
		panic("feistel: input not full block")
	}

	if len(dst) < size {
		panic("feistel: output not full block")
	}

	store(dst[:size], c.engine.Encrypt(load[B](src[:size]), c.key))
}

// Decrypt decrypts the first block in src into dst.
func (c *Cipher[B, H, K]) Decrypt(dst, src []byte) {
	size := c.BlockSize()

	if len(src) < size {
		panic("feistel: input not full block")
	}

	if len(dst) < size {
		panic("feistel: output not full block")
	}

	store(dst[:size], c.engine.Decrypt(load[B](src[:size]), c.key))
}

func load[B Word](src []byte) B {
	var word uint64

	for _, b := range src {
		word = word<<8 | uint64(b)
	}

	return B(word)
}

func store[B Word](dst []byte, word B) {
	value := uint64(word)

	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(value)
		value >>= 8
	}
}
