package encryption

import (
	"crypto/cipher"
	"fmt"

	"github.com/idelchi/feistel/pkg/feistel"
	"github.com/idelchi/feistel/pkg/roundfunc"
)

// Params selects a Feistel network.
type Params struct {
	// Width is the block width in bits: 16, 32 or 64
	Width int

	// Rounds is the number of Feistel rounds
	Rounds int

	// Function names the round function
	Function string
}

// KeySize returns the key length in bytes for a block width, which equals the half-block width.
func KeySize(width int) int {
	return width / 16 //nolint:mnd
}

// NewBlock builds the engine described by params and binds it to key.
func NewBlock(params Params, key []byte) (cipher.Block, error) {
	switch params.Width {
	case 16: //nolint:mnd
		return newBlock[uint16, uint8](params, key)
	case 32: //nolint:mnd
		return newBlock[uint32, uint16](params, key)
	case 64: //nolint:mnd
		return newBlock[uint64, uint32](params, key)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, params.Width)
	}
}

func newBlock[B, H feistel.Word](params Params, key []byte) (cipher.Block, error) {
	if len(key) != feistel.Bits[H]()/8 {
		return nil, fmt.Errorf("%w: %d-bit blocks need a %d-byte key, got %d",
			ErrInvalidKeySize, params.Width, feistel.Bits[H]()/8, len(key))
	}

	fn, err := roundfunc.Lookup[H](params.Function)
	if err != nil {
		return nil, err
	}

	engine, err := feistel.New[B](params.Rounds, fn)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	var word uint64

	for _, b := range key {
		word = word<<8 | uint64(b)
	}

	return feistel.NewCipher(engine, H(word)), nil
}
