// Package config holds the per-invocation configuration, built once from
// flags and environment and passed into each component. No process-wide
// mutable state.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kaleb-himes/wolfCLU/pkg/hexenc"
)

// Config collects everything one invocation needs.
type Config struct {
	// Algorithm is the positional algorithm name, e.g. "aes-cbc-256".
	Algorithm string

	// Input is the input file path; empty or "-" means stdin.
	Input string `mapstructure:"in"`

	// Output is the output file path; empty or "-" means stdout.
	Output string `mapstructure:"out"`

	// Password is the passphrase for key derivation. Empty with no Key set
	// triggers an interactive prompt.
	Password string `mapstructure:"pwd"`

	// Key is an explicit hex-encoded key.
	Key string `mapstructure:"key"`

	// IV is an explicit hex-encoded initialization vector.
	IV string `mapstructure:"iv"`

	// Size constrains the blake2b digest length in bytes.
	Size int `mapstructure:"size" validate:"min=0,max=64"`

	// Length limits hashing to the first N input bytes.
	Length int64 `mapstructure:"length" validate:"min=0"`

	// Binary writes the raw digest instead of hex. Requires a file output.
	Binary bool `mapstructure:"binary"`

	// Seconds is the per-algorithm benchmark budget.
	Seconds int `mapstructure:"time" validate:"min=0,max=10"`

	// All benchmarks the whole algorithm set.
	All bool `mapstructure:"all"`

	// Parallel bounds concurrent file hashing.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Quiet suppresses non-error chatter.
	Quiet bool `mapstructure:"quiet"`

	// Decrypt selects the decrypt direction.
	Decrypt bool

	// Files are positional input files for the hash command.
	Files []string
}

// Validate validates the configuration against the struct tags, plus the
// hex-encoded fields.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if _, err := hexenc.Decode(c.Key); err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	if _, err := hexenc.Decode(c.IV); err != nil {
		return fmt.Errorf("invalid iv: %w", err)
	}

	if c.Password != "" && c.Key != "" {
		return fmt.Errorf("password and explicit key are mutually exclusive")
	}

	return nil
}
