package encryption

import "errors"

var (
	// ErrEmptyData is returned when attempting to unpad empty data.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not aligned with the block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
	// ErrUnsupportedWidth is returned for block widths other than 16, 32 and 64 bits.
	ErrUnsupportedWidth = errors.New("unsupported block width")
	// ErrInvalidKeySize is returned when the key does not match the half-block width.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrProcessing indicates an error during envelope processing.
	ErrProcessing = errors.New("envelope processing error")
)
