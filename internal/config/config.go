// Package config holds the runtime configuration of the feistel tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/gogen/pkg/validator"
)

var (
	// ErrNoKey is returned when neither --key nor --key-file is set.
	ErrNoKey = errors.New("no key: set --key or --key-file")

	// ErrUsage indicates an error in command-line usage or configuration.
	ErrUsage = errors.New("usage error")
)

// Config holds all options, bound from flags and FEISTEL_* environment variables.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Quiet suppresses non-error output
	Quiet bool

	// LogLevel selects the diagnostic verbosity
	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn error"`

	// NoColor disables colored diagnostics
	NoColor bool `mapstructure:"no-color"`

	// Engine parameters
	Engine Engine `mapstructure:",squash"`

	// Key material
	Key Key `mapstructure:",squash"`

	// File processing options
	Mode               string   `validate:"omitempty,oneof=cbc ecb"`
	Parallel           int      `validate:"min=0"`
	Delete             bool
	PreserveTimestamps bool     `mapstructure:"preserve-timestamps"`
	Stats              bool
	Dry                bool
	Suffixes           Suffixes `mapstructure:",squash"`

	// File selection when walking directories
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from"`
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Value options
	From string
	Hex  bool

	// Demo options
	Plaintext uint64

	// Set by the decrypt commands
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-"`
}

// Engine selects the Feistel network parameters.
type Engine struct {
	// Rounds is the number of Feistel rounds
	Rounds int `validate:"min=0,max=65535"`

	// Function names the round function
	Function string `validate:"required,roundfunc"`

	// Width is the block width in bits
	Width int `validate:"oneof=16 32 64"`
}

// Key holds the key either inline or as a path to a file.
type Key struct {
	// String is the hex-encoded key
	String string `mapstructure:"key" label:"--key" mask:"filled" validate:"exclusive=File"`

	// File is a path to a file holding the hex-encoded key
	File string `mapstructure:"key-file" label:"--key-file"`
}

// Suffixes controls output file naming.
type Suffixes struct {
	// Encrypt is appended to encrypted files
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to decrypted files after stripping Encrypt
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Display reports whether the configuration should be shown instead of running the command.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c *Config) Validate(config any) error {
	validate := validator.NewValidator()

	if err := register(validate); err != nil {
		return err
	}

	errs := validate.Validate(config)

	switch {
	case len(errs) == 0:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}

// Bytes decodes the key from the inline value or the key file.
func (k Key) Bytes() ([]byte, error) {
	var raw string

	switch {
	case k.String != "":
		raw = k.String
	case k.File != "":
		data, err := os.ReadFile(k.File)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		raw = string(data)
	default:
		return nil, ErrNoKey
	}

	decoded, err := key.FromHex(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	return decoded, nil
}

// Set reports whether any key source is configured.
func (k Key) Set() bool {
	return k.String != "" || k.File != ""
}
