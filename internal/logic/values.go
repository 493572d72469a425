package logic

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/encryption"
	"github.com/idelchi/feistel/internal/fileutil"
)

// ErrNoValues is returned when the value commands have nothing to process.
var ErrNoValues = errors.New("no values given")

// Value is either a JSON number or a string holding an integer literal.
type Value string

// UnmarshalJSON accepts 12345 as well as "0x3039".
func (v *Value) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = Value(text)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("value %s is neither a number nor a string", data)
	}

	*v = Value(number.String())

	return nil
}

// LoadValues reads a JSONC file holding an array of values.
func LoadValues(path string) ([]string, error) {
	values, err := fileutil.LoadJSONC[Value](path)
	if err != nil {
		return nil, fmt.Errorf("loading values: %w", err)
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out, nil
}

// ParseValue parses an integer literal (decimal, 0x, 0o or 0b) that must fit in width bits.
func ParseValue(text string, width int) (uint64, error) {
	value, err := strconv.ParseUint(text, 0, width)
	if err != nil {
		return 0, fmt.Errorf("parsing value %q as %d-bit block: %w", text, width, err)
	}

	return value, nil
}

// checkWidth reports an error when value does not fit in width bits.
func checkWidth(value uint64, width int) error {
	if width < 64 && value>>width != 0 {
		return fmt.Errorf("%w: %d does not fit in %d bits", strconv.ErrRange, value, width)
	}

	return nil
}

// RunValues encrypts or decrypts each configured value and writes one result per line.
func RunValues(cfg *config.Config, out io.Writer) error {
	inputs := append([]string{}, cfg.Files...)

	if cfg.From != "" {
		loaded, err := LoadValues(cfg.From)
		if err != nil {
			return err
		}

		inputs = append(inputs, loaded...)
	}

	if len(inputs) == 0 {
		return ErrNoValues
	}

	key, err := cfg.Key.Bytes()
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	transform, err := newTransform(cfg, key)
	if err != nil {
		return err
	}

	for _, input := range inputs {
		value, err := ParseValue(input, cfg.Engine.Width)
		if err != nil {
			return err
		}

		result := transform(value, cfg.Decrypt)

		if cfg.Quiet {
			fmt.Fprintln(out, format(result, cfg))
		} else {
			fmt.Fprintf(out, "%s -> %s\n", format(value, cfg), format(result, cfg))
		}
	}

	return nil
}

// newTransform builds a function running a single block through the configured engine.
func newTransform(cfg *config.Config, key []byte) (func(value uint64, decrypt bool) uint64, error) {
	block, err := encryption.NewBlock(encryption.Params{
		Width:    cfg.Engine.Width,
		Rounds:   cfg.Engine.Rounds,
		Function: cfg.Engine.Function,
	}, key)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	size := block.BlockSize()

	return func(value uint64, decrypt bool) uint64 {
		var buf [8]byte

		binary.BigEndian.PutUint64(buf[:], value)

		word := buf[8-size:]

		if decrypt {
			block.Decrypt(word, word)
		} else {
			block.Encrypt(word, word)
		}

		return binary.BigEndian.Uint64(buf[:])
	}, nil
}

func format(value uint64, cfg *config.Config) string {
	if cfg.Hex {
		return fmt.Sprintf("0x%0*x", cfg.Engine.Width/4, value) //nolint:mnd
	}

	return strconv.FormatUint(value, 10)
}
