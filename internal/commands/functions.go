package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/feistel/pkg/roundfunc"
)

// NewFunctionsCommand creates the functions command listing the round functions.
func NewFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "functions",
		Aliases: []string{"funcs"},
		Short:   "List the available round functions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, fn := range roundfunc.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d  %s\n", fn.Name, fn.ID, fn.Description)
			}

			return nil
		},
	}
}
