package feistel_test

import (
	"bytes"
	"crypto/cipher"
	"testing"

	"github.com/idelchi/feistel/pkg/feistel"
)

func TestCipherBlockSize(t *testing.T) {
	t.Parallel()

	e16, _ := feistel.New16(16, and[uint8])
	e32, _ := feistel.New[uint32, uint16, uint16](16, and[uint16])
	e64, _ := feistel.New[uint64, uint32, uint32](16, and[uint32])

	if got := feistel.NewCipher(e16, 0x5C).BlockSize(); got != 2 {
		t.Errorf("16-bit BlockSize() = %d, want 2", got)
	}

	if got := feistel.NewCipher(e32, 0x5C).BlockSize(); got != 4 {
		t.Errorf("32-bit BlockSize() = %d, want 4", got)
	}

	if got := feistel.NewCipher(e64, 0x5C).BlockSize(); got != 8 {
		t.Errorf("64-bit BlockSize() = %d, want 8", got)
	}
}

// TestCipherBigEndian verifies that bytes are interpreted as a big-endian block.
func TestCipherBigEndian(t *testing.T) {
	t.Parallel()

	engine, err := feistel.New16(16, and[uint8])
	if err != nil {
		t.Fatalf("New16(16) error: %v", err)
	}

	block := feistel.NewCipher(engine, 92)

	dst := make([]byte, 2)
	block.Encrypt(dst, []byte{0x30, 0x39})

	if !bytes.Equal(dst, []byte{0x38, 0x29}) {
		t.Errorf("Encrypt(3039) = %x, want 3829", dst)
	}

	block.Decrypt(dst, dst)

	if !bytes.Equal(dst, []byte{0x30, 0x39}) {
		t.Errorf("Decrypt(3829) = %x, want 3039", dst)
	}
}

func TestCipherCBC(t *testing.T) {
	t.Parallel()

	engine, err := feistel.New[uint64, uint32, uint32](16, xor[uint32])
	if err != nil {
		t.Fatalf("New[uint64] error: %v", err)
	}

	block := feistel.NewCipher(engine, 0x5C5C5C5C)

	plaintext := []byte("sixteen byte msg and sixteen more")[:32]
	iv := bytes.Repeat([]byte{0x42}, block.BlockSize())

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("CBC ciphertext equals plaintext")
	}

	recovered := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(recovered, ciphertext)

	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("CBC round trip = %q, want %q", recovered, plaintext)
	}
}

func TestCipherShortBlock(t *testing.T) {
	t.Parallel()

	engine, _ := feistel.New16(1, and[uint8])
	block := feistel.NewCipher(engine, 0)

	defer func() {
		if recover() == nil {
			t.Error("Encrypt with a short source did not panic")
		}
	}()

	block.Encrypt(make([]byte, 2), []byte{0x01})
}
