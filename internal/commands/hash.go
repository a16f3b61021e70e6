package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kaleb-himes/wolfCLU/internal/logic"
)

// NewHashCommand creates a new cobra command for the hash subcommand.
func NewHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <algorithm> [files...] [flags]",
		Short: "Hash files or stdin",
		Long: `Digest input with a hash function, e.g. "wolfclu hash sha256 -i archive.tar".

Multiple files are hashed concurrently and printed as "<hex>  <file>" lines.
For blake2b, -s selects the output size (1-64 bytes). -l limits hashing to
the first N bytes of input.`,
		Args:              cobra.MinimumNArgs(1),
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshal()
			if err != nil {
				return err
			}

			cfg.Algorithm = args[0]
			cfg.Files = args[1:]

			return logic.RunHash(&cfg)
		},
	}

	addStreamFlags(cmd)
	cmd.Flags().IntP("size", "s", 0, "Digest size in bytes for variable-output hashes (blake2b)")
	cmd.Flags().Int64P("length", "l", 0, "Hash only the first N bytes of input")
	cmd.Flags().Bool("binary", false, "Write the raw digest instead of hex (requires -o)")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of files hashed in parallel")

	return cmd
}
