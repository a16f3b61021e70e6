package commands

import (
	"github.com/spf13/cobra"

	"github.com/kaleb-himes/wolfCLU/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt <algorithm> [flags]",
		Aliases: []string{"dec"},
		Short:   "Decrypt a file or stdin",
		Long: `Decrypt input previously produced by encrypt.

In password mode the salt and IV are read back from the head of the input
stream. With an explicit key (-K) the original IV must be supplied via --iv.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshal()
			if err != nil {
				return err
			}

			cfg.Algorithm = args[0]
			cfg.Decrypt = true

			return logic.RunCipher(&cfg)
		},
	}

	addStreamFlags(cmd)
	addKeyFlags(cmd)

	return cmd
}
