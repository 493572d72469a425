package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// Engine parameters are taken from each file header, not from flags.
// Without arguments the working directory is searched for encrypted files.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [files/directories...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			if len(args) == 0 {
				args = []string{"."}
			}

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			log, err := logger(cfg)
			if err != nil {
				return err
			}

			return logic.Run(cfg, log)
		},
	}

	fileFlags(cmd)

	return cmd
}
