package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command and attaches every subcommand.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "wolfclu [flags] command [flags]",
		Short: "Symmetric encryption, hashing and benchmarking utility",
		Long: `A command-line utility for symmetric encryption, decryption, hashing and
benchmarking over a set of interchangeable block ciphers and hash functions.

Ciphers are named {family}-{mode}-{size}, e.g. "aes-cbc-256" or "3des-cbc-168";
hashes by family, e.g. "sha256" or "blake2b".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewHashCommand(),
		NewBenchCommand(),
	)

	return root
}
