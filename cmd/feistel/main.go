// Command feistel encrypts and decrypts integer blocks and files with a Feistel network.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/feistel/internal/commands"
	"github.com/idelchi/feistel/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	switch err := commands.NewRootCommand(cfg, version).Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
