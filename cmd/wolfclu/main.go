// Command wolfclu is a symmetric encryption, hashing and benchmarking
// utility over a set of interchangeable ciphers and hash functions.
package main

import (
	"fmt"
	"os"

	"github.com/kaleb-himes/wolfCLU/internal/commands"
)

// version is set at build time through -ldflags.
var version = "dev" //nolint:gochecknoglobals

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
