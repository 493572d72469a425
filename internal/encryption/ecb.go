package encryption

import "crypto/cipher"

// ecb applies the block cipher to each block independently.
type ecb struct {
	block   cipher.Block
	decrypt bool
}

func newECBEncrypter(block cipher.Block) cipher.BlockMode {
	return &ecb{block: block}
}

func newECBDecrypter(block cipher.Block) cipher.BlockMode {
	return &ecb{block: block, decrypt: true}
}

func (e *ecb) BlockSize() int {
	return e.block.BlockSize()
}

func (e *ecb) CryptBlocks(dst, src []byte) {
	size := e.block.BlockSize()

	if len(src)%size != 0 {
		panic("encryption/ecb: input not full blocks")
	}

	if len(dst) < len(src) {
		panic("encryption/ecb: output smaller than input")
	}

	for i := 0; i < len(src); i += size {
		if e.decrypt {
			e.block.Decrypt(dst[i:i+size], src[i:i+size])
		} else {
			e.block.Encrypt(dst[i:i+size], src[i:i+size])
		}
	}
}
