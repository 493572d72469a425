package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files/directories...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			log, err := logger(cfg)
			if err != nil {
				return err
			}

			return logic.Run(cfg, log)
		},
	}

	cmd.Flags().StringP("mode", "m", "cbc", "Chaining mode (cbc or ecb)")

	fileFlags(cmd)

	return cmd
}
