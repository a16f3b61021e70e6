package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kaleb-himes/wolfCLU/internal/config"
)

// bindFlags returns a PersistentPreRunE that binds the command's flags into
// viper so they can be overridden through the environment.
func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// unmarshal collects the bound flags into a validated Config.
func unmarshal() (config.Config, error) {
	var cfg config.Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Parallel == 0 {
		cfg.Parallel = 1
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// addStreamFlags registers the input/output flags shared by the cipher and
// hash commands.
func addStreamFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("in", "i", "", `Input file ("-" or empty for stdin)`)
	cmd.Flags().StringP("out", "o", "", `Output file ("-" or empty for stdout)`)
}

// addKeyFlags registers the key material flags shared by encrypt and decrypt.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("pwd", "k", "", "Password for key derivation (prompted when omitted)")
	cmd.Flags().StringP("key", "K", "", "Explicit hex-encoded key")
	cmd.Flags().String("iv", "", "Explicit hex-encoded IV")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
}
