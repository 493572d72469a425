package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/logging"
)

// NewRootCommand creates the root command with common configuration.
// Engine, key and output flags are persistent so every subcommand shares them.
// Environment variables are prefixed with the command name, e.g. FEISTEL_ROUNDS.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "feistel [flags] command [flags]"
	root.Short = "Feistel network encryption utility"
	root.Long = `A Feistel network with pluggable round functions.
Encrypts single integer blocks or whole files, and decrypts them again with the same key.`

	flags := root.PersistentFlags()

	flags.IntP("rounds", "r", 16, "Number of Feistel rounds") //nolint:mnd
	flags.StringP("function", "F", "and", "Round function, see the functions command")
	flags.IntP("width", "w", 16, "Block width in bits (16, 32 or 64)") //nolint:mnd

	flags.StringP("key", "k", "", "Key, hex-encoded, half as wide as the block")
	flags.StringP("key-file", "f", "", "Path to the key file with the hex-encoded key")

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.String("log-level", "warn", "Diagnostic level ("+strings.Join(logging.Levels, ", ")+")")
	flags.Bool("no-color", false, "Disable colored diagnostics")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewValueCommand(cfg),
		NewDemoCommand(cfg),
		NewFunctionsCommand(),
		NewGenerateCommand(cfg),
	)

	return root
}

// fileFlags adds the flags shared by the file encrypt and decrypt commands.
func fileFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("parallel", "j", 0, "Number of parallel workers, 0 uses the number of CPUs")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().String("encrypt-ext", ".fstl", "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
	cmd.Flags().BoolP("preserve-timestamps", "p", false, "Preserve the modification time of the input")
	cmd.Flags().Bool("stats", false, "Print statistics after processing")
	cmd.Flags().BoolP("dry", "n", false, "Show what would be processed without writing anything")

	cmd.Flags().StringSliceP("include", "i", nil, "Patterns (find -path) selecting files inside directories")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Patterns (find -path) dropping files inside directories")
	cmd.Flags().String("include-from", "", "Path to a JSONC file with include patterns")
	cmd.Flags().String("exclude-from", "", "Path to a JSONC file with exclude patterns")
}
