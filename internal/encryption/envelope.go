package encryption

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math"

	"golang.org/x/crypto/hkdf"

	"github.com/idelchi/feistel/pkg/roundfunc"
)

const (
	envelopeMagic   = "FSTL"
	envelopeVersion = byte(1)
	envelopeTagSize = sha256.Size

	envelopeFlagExec = 0x01
)

// envelopeHeaderSize covers magic, version, flags, mode, width, function id and a 16-bit round count.
const envelopeHeaderSize = len(envelopeMagic) + 7

// envelope is the parsed form of a file header.
type envelope struct {
	mode       CipherMode
	executable bool
	params     Params
}

func (e envelope) marshal() ([]byte, error) {
	fn, err := roundfunc.ByName(e.params.Function)
	if err != nil {
		return nil, err
	}

	if e.params.Rounds < 0 || e.params.Rounds > math.MaxUint16 {
		return nil, fmt.Errorf("%w: round count %d does not fit the header", ErrProcessing, e.params.Rounds)
	}

	header := make([]byte, envelopeHeaderSize)
	copy(header, envelopeMagic)

	offset := len(envelopeMagic)

	header[offset] = envelopeVersion

	var flags byte

	if e.executable {
		flags |= envelopeFlagExec
	}

	header[offset+1] = flags
	header[offset+2] = byte(e.mode)
	header[offset+3] = byte(e.params.Width)
	header[offset+4] = fn.ID

	binary.BigEndian.PutUint16(header[offset+5:], uint16(e.params.Rounds)) //nolint:gosec // range checked above

	return header, nil
}

func parseEnvelopeHeader(header []byte) (envelope, error) {
	if len(header) != envelopeHeaderSize {
		return envelope{}, fmt.Errorf("%w: envelope header too short", ErrProcessing)
	}

	if !bytes.Equal(header[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return envelope{}, fmt.Errorf("%w: invalid envelope magic", ErrProcessing)
	}

	offset := len(envelopeMagic)

	if version := header[offset]; version != envelopeVersion {
		return envelope{}, fmt.Errorf("%w: unsupported envelope version %d", ErrProcessing, version)
	}

	mode := CipherMode(header[offset+2])

	switch mode {
	case ModeECB, ModeCBC:
	default:
		return envelope{}, fmt.Errorf("%w: unsupported envelope mode %d", ErrProcessing, mode)
	}

	width := int(header[offset+3])

	switch width {
	case 16, 32, 64: //nolint:mnd
	default:
		return envelope{}, fmt.Errorf("%w: unsupported block width %d", ErrProcessing, width)
	}

	fn, err := roundfunc.ByID(header[offset+4])
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	return envelope{
		mode:       mode,
		executable: header[offset+1]&envelopeFlagExec != 0,
		params: Params{
			Width:    width,
			Rounds:   int(binary.BigEndian.Uint16(header[offset+5:])),
			Function: fn.Name,
		},
	}, nil
}

// newEnvelopeMAC returns an HMAC-SHA256 keyed from the cipher key and primed with the header.
func newEnvelopeMAC(key, header []byte) (hash.Hash, error) {
	const macKeyLen = 32

	macKey := make([]byte, macKeyLen)

	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte("feistel/mac")), macKey); err != nil {
		return nil, fmt.Errorf("deriving mac key: %w", err)
	}

	mac := hmac.New(sha256.New, macKey)
	mac.Write(header)

	return mac, nil
}
