package encryption

import "fmt"

// CipherMode represents the block chaining mode used for a file.
type CipherMode byte

const (
	// ModeECB encrypts each block independently.
	ModeECB CipherMode = iota + 1
	// ModeCBC chains blocks from a random IV.
	ModeCBC
)

// ParseCipherMode maps a mode name to a CipherMode.
func ParseCipherMode(name string) (CipherMode, error) {
	switch name {
	case "ecb":
		return ModeECB, nil
	case "cbc", "":
		return ModeCBC, nil
	default:
		return 0, fmt.Errorf("%w: unsupported cipher mode %q", ErrProcessing, name)
	}
}

// String returns the mode name.
func (m CipherMode) String() string {
	switch m {
	case ModeECB:
		return "ecb"
	case ModeCBC:
		return "cbc"
	default:
		return fmt.Sprintf("mode(%d)", byte(m))
	}
}
