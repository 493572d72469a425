package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/logic"
)

// NewValueCommand creates the value command grouping single block encryption and decryption.
func NewValueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "value command [flags] values...",
		Aliases: []string{"val"},
		Short:   "Encrypt or decrypt integer blocks",
		Long: `Encrypt or decrypt integer blocks as wide as --width.
Values are decimal or prefixed with 0x, 0o or 0b.`,
	}

	cmd.AddCommand(newValueSubcommand(cfg, false), newValueSubcommand(cfg, true))

	return cmd
}

func newValueSubcommand(cfg *config.Config, decrypt bool) *cobra.Command {
	use, alias, short := "encrypt", "enc", "Encrypt values"
	if decrypt {
		use, alias, short = "decrypt", "dec", "Decrypt values"
	}

	cmd := &cobra.Command{
		Use:     use + " [flags] values...",
		Aliases: []string{alias},
		Short:   short,
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = decrypt

			return preRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunValues(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("from", "", "Path to a JSONC file with an array of values")
	cmd.Flags().Bool("hex", false, "Print values in hexadecimal")

	return cmd
}
