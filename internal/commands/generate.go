package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/encryption"
)

// NewGenerateCommand creates the generate command printing a random key sized for --width.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := make([]byte, encryption.KeySize(cfg.Engine.Width))
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))

			return nil
		},
	}
}
