// Package commands provides the command-line interface for the feistel tool.
//
// It implements commands for:
//   - file encryption and decryption
//   - single value encryption and decryption
//   - the reference demonstration
//   - key generation
//
// Flags are bound to viper together with FEISTEL_* environment variables by the
// root command. Each command then unmarshals, optionally shows, and validates
// the configuration through cobraext.Validate.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/logging"
)

// preRun returns a PreRunE handler that resolves positional args into cfg.Files
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Files = args

		return cobraext.Validate(cfg, cfg)
	}
}

// logger builds the diagnostic logger writing to stderr.
func logger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
}
