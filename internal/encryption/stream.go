package encryption

import (
	"bufio"
	"crypto/cipher"
	"crypto/hmac"
	"errors"
	"fmt"
	"hash"
	"io"
)

// encryptStream pads and encrypts everything read from reader, writing whole blocks to writer.
func encryptStream(reader io.Reader, writer io.Writer, mode cipher.BlockMode) error {
	size := mode.BlockSize()

	buf, ok := bufferPool.Get().(*[]byte)
	if !ok {
		return errors.New("invalid buffer type from pool") //nolint:err113
	}
	defer bufferPool.Put(buf)

	pending := make([]byte, 0, defaultBufferSize+size)
	bufReader := bufio.NewReaderSize(reader, defaultBufferSize)

	for {
		n, readErr := bufReader.Read(*buf)
		if n > 0 {
			pending = append(pending, (*buf)[:n]...)

			if full := len(pending) - len(pending)%size; full > 0 {
				mode.CryptBlocks(pending[:full], pending[:full])

				if _, err := writer.Write(pending[:full]); err != nil {
					return fmt.Errorf("writing encrypted blocks: %w", err)
				}

				pending = append(pending[:0], pending[full:]...)
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return fmt.Errorf("reading input: %w", readErr)
		}
	}

	padded := pkcs7Pad(pending, size)
	mode.CryptBlocks(padded, padded)

	if _, err := writer.Write(padded); err != nil {
		return fmt.Errorf("writing final encrypted block: %w", err)
	}

	return nil
}

// decryptStream authenticates and decrypts ciphertext followed by a MAC tag.
// The last block and the tag are held back until EOF so padding is only
// removed after the tag has been checked.
//
//nolint:cyclop
func decryptStream(reader io.Reader, writer io.Writer, mode cipher.BlockMode, mac hash.Hash) error {
	size := mode.BlockSize()
	reserve := size + envelopeTagSize

	buf, ok := bufferPool.Get().(*[]byte)
	if !ok {
		return errors.New("invalid buffer type from pool") //nolint:err113
	}
	defer bufferPool.Put(buf)

	pending := make([]byte, 0, defaultBufferSize+reserve)

	for {
		n, readErr := reader.Read(*buf)
		if n > 0 {
			pending = append(pending, (*buf)[:n]...)

			if avail := len(pending) - reserve; avail >= size {
				full := avail - avail%size
				chunk := pending[:full]

				mac.Write(chunk)
				mode.CryptBlocks(chunk, chunk)

				if _, err := writer.Write(chunk); err != nil {
					return fmt.Errorf("writing decrypted blocks: %w", err)
				}

				pending = append(pending[:0], pending[full:]...)
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return fmt.Errorf("reading ciphertext: %w", readErr)
		}
	}

	if len(pending) < reserve {
		return fmt.Errorf("%w: ciphertext truncated", ErrProcessing)
	}

	if len(pending) != reserve {
		return ErrInvalidBlockSize
	}

	last, tag := pending[:size], pending[size:]

	mac.Write(last)

	if !hmac.Equal(mac.Sum(nil), tag) {
		return fmt.Errorf("%w: authentication failed", ErrProcessing)
	}

	mode.CryptBlocks(last, last)

	unpadded, err := pkcs7Unpad(last, size)
	if err != nil {
		return fmt.Errorf("removing padding: %w", err)
	}

	if _, err := writer.Write(unpadded); err != nil {
		return fmt.Errorf("writing final decrypted block: %w", err)
	}

	return nil
}
