package logic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/encryption"
)

// DemoKeyByte is repeated to fill the key when the demo runs without one.
const DemoKeyByte = 0x5c

// RunDemo encrypts cfg.Plaintext, decrypts the result and reports both steps.
func RunDemo(cfg *config.Config, out io.Writer) error {
	key := bytes.Repeat([]byte{DemoKeyByte}, encryption.KeySize(cfg.Engine.Width))

	if cfg.Key.Set() {
		var err error

		if key, err = cfg.Key.Bytes(); err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
	}

	if err := checkWidth(cfg.Plaintext, cfg.Engine.Width); err != nil {
		return err
	}

	transform, err := newTransform(cfg, key)
	if err != nil {
		return err
	}

	var keyValue uint64
	for _, b := range key {
		keyValue = keyValue<<8 | uint64(b)
	}

	ciphertext := transform(cfg.Plaintext, false)

	fmt.Fprintf(out, "-- Encrypting %d with key %d --\n", cfg.Plaintext, keyValue)
	fmt.Fprintf(out, "Generated ciphertext: %d\n", ciphertext)

	recovered := transform(ciphertext, true)

	fmt.Fprintf(out, "-- Decrypting %d with key %d --\n", ciphertext, keyValue)
	fmt.Fprintf(out, "Retrieved plaintext: %d\n", recovered)

	if recovered != cfg.Plaintext {
		return fmt.Errorf("round trip mismatch: %d != %d", recovered, cfg.Plaintext)
	}

	return nil
}
