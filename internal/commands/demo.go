package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/logic"
)

// NewDemoCommand creates the demo command, an encrypt and decrypt round trip of one value.
func NewDemoCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "demo [flags]",
		Short:   "Encrypt and decrypt a single value",
		Long:    "Encrypt and decrypt a single value. Without --key every key byte is 0x5c.",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunDemo(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint64("plaintext", 12345, "Value to encrypt") //nolint:mnd

	return cmd
}
