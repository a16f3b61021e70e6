package commands

import (
	"github.com/spf13/cobra"

	"github.com/kaleb-himes/wolfCLU/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt <algorithm> [flags]",
		Aliases: []string{"enc"},
		Short:   "Encrypt a file or stdin",
		Long: `Encrypt input with a block cipher, e.g. "wolfclu encrypt aes-cbc-256 -i secret.txt -o secret.enc".

With a password (-k, or prompted) the key is derived with PBKDF2 and the salt
and IV are prepended to the output so the password alone can decrypt. With an
explicit key (-K) the output is the bare ciphertext; a generated IV is
reported so it can be supplied on decrypt.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshal()
			if err != nil {
				return err
			}

			cfg.Algorithm = args[0]

			return logic.RunCipher(&cfg)
		},
	}

	addStreamFlags(cmd)
	addKeyFlags(cmd)

	return cmd
}
