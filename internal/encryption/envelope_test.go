package encryption

import (
	"errors"
	"testing"
)

func TestEnvelopeHeader(t *testing.T) {
	t.Parallel()

	want := envelope{
		mode:       ModeCBC,
		executable: true,
		params:     Params{Width: 32, Rounds: 300, Function: "blake2b"},
	}

	header, err := want.marshal()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	if len(header) != envelopeHeaderSize {
		t.Fatalf("header length = %d, want %d", len(header), envelopeHeaderSize)
	}

	if string(header[:4]) != envelopeMagic {
		t.Errorf("header magic = %q, want %q", header[:4], envelopeMagic)
	}

	got, err := parseEnvelopeHeader(header)
	if err != nil {
		t.Fatalf("parseEnvelopeHeader error: %v", err)
	}

	if got != want {
		t.Errorf("parseEnvelopeHeader = %+v, want %+v", got, want)
	}
}

func TestEnvelopeHeaderInvalid(t *testing.T) {
	t.Parallel()

	valid, err := envelope{mode: ModeECB, params: Params{Width: 16, Rounds: 16, Function: "and"}}.marshal()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	cases := []struct {
		name   string
		offset int
		value  byte
	}{
		{"magic", 0, 'X'},
		{"version", 4, 9},
		{"mode", 6, 7},
		{"width", 7, 24},
		{"function", 8, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			header := append([]byte(nil), valid...)
			header[tc.offset] = tc.value

			if _, err := parseEnvelopeHeader(header); !errors.Is(err, ErrProcessing) {
				t.Errorf("parseEnvelopeHeader error = %v, want %v", err, ErrProcessing)
			}
		})
	}

	if _, err := parseEnvelopeHeader(valid[:5]); !errors.Is(err, ErrProcessing) {
		t.Errorf("short header error = %v, want %v", err, ErrProcessing)
	}

	tooMany := envelope{mode: ModeECB, params: Params{Width: 16, Rounds: 1 << 16, Function: "and"}}
	if _, err := tooMany.marshal(); !errors.Is(err, ErrProcessing) {
		t.Errorf("marshal with %d rounds error = %v, want %v", 1<<16, err, ErrProcessing)
	}
}

func TestPKCS7(t *testing.T) {
	t.Parallel()

	for _, size := range []int{2, 4, 8} {
		for length := range 3 * size {
			data := make([]byte, length)

			padded := pkcs7Pad(append([]byte(nil), data...), size)
			if len(padded)%size != 0 || len(padded) <= length {
				t.Fatalf("pkcs7Pad(%d bytes, %d) = %d bytes", length, size, len(padded))
			}

			unpadded, err := pkcs7Unpad(padded, size)
			if err != nil {
				t.Fatalf("pkcs7Unpad error: %v", err)
			}

			if len(unpadded) != length {
				t.Errorf("pkcs7Unpad length = %d, want %d", len(unpadded), length)
			}
		}
	}

	if _, err := pkcs7Unpad(nil, 2); !errors.Is(err, ErrEmptyData) {
		t.Errorf("pkcs7Unpad(nil) error = %v, want %v", err, ErrEmptyData)
	}

	if _, err := pkcs7Unpad([]byte{0x01, 0x00}, 2); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("pkcs7Unpad(zero pad) error = %v, want %v", err, ErrInvalidPadding)
	}

	if _, err := pkcs7Unpad([]byte{0x01, 0x03}, 2); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("pkcs7Unpad(oversized pad) error = %v, want %v", err, ErrInvalidPadding)
	}

	if _, err := pkcs7Unpad([]byte{0x01, 0x03, 0x02, 0x03}, 4); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("pkcs7Unpad(mismatched pad) error = %v, want %v", err, ErrInvalidPadding)
	}
}
