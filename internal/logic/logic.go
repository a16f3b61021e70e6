// Package logic implements the core orchestration for encryption,
// decryption, hashing and benchmarking: it resolves the algorithm, produces
// key material and drives the streaming engines.
package logic

import (
	"fmt"
	"io"
	"os"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
	"github.com/kaleb-himes/wolfCLU/internal/config"
	"github.com/kaleb-himes/wolfCLU/internal/encryption"
	"github.com/kaleb-himes/wolfCLU/internal/fileutil"
	"github.com/kaleb-himes/wolfCLU/internal/keys"
	"github.com/kaleb-himes/wolfCLU/pkg/hexenc"
)

// RunCipher executes one encrypt or decrypt job to completion.
//
// Key material and the password are zeroed on every exit path. Partial
// output files are left in place on failure for the caller to inspect.
func RunCipher(cfg *config.Config) (err error) {
	spec, err := algo.Parse(cfg.Algorithm)
	if err != nil {
		return err
	}

	if spec.IsHash() {
		return fmt.Errorf("%s is a hash; use the hash command", spec)
	}

	password, err := resolvePassword(cfg)
	if err != nil {
		return err
	}

	defer zero(password)

	in, err := fileutil.OpenInput(cfg.Input)
	if err != nil {
		return err
	}

	defer in.Close()

	material, err := buildMaterial(cfg, spec, password, in)
	if err != nil {
		return err
	}

	defer material.Zero()

	if !cfg.Decrypt && material.Source == keys.ExplicitHex && cfg.IV == "" && !cfg.Quiet {
		// The generated IV is not embedded in explicit-key streams, so
		// report it for the decrypt invocation.
		fmt.Fprintf(os.Stderr, "iv: %s\n", hexenc.Encode(material.IV))
	}

	out, err := fileutil.OpenOutput(cfg.Output)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	job := &encryption.Job{Spec: spec, Material: material, Decrypt: cfg.Decrypt}

	return job.Run(in, out)
}

// resolvePassword returns the passphrase bytes when the job is password
// based: from the flag, or interactively with echo disabled.
func resolvePassword(cfg *config.Config) ([]byte, error) {
	if cfg.Key != "" {
		return nil, nil
	}

	if cfg.Password != "" {
		return []byte(cfg.Password), nil
	}

	prompt := "Password: "
	if cfg.Decrypt {
		prompt = "Decryption password: "
	}

	return keys.ReadPassword(prompt)
}

// buildMaterial produces the job's key material. On the password decrypt
// path the salt and IV are recovered from the head of the input stream.
func buildMaterial(cfg *config.Config, spec algo.Spec, password []byte, in io.Reader) (*keys.Material, error) {
	if cfg.Decrypt && cfg.Key == "" {
		salt, iv, err := encryption.ReadPasswordHeader(in, spec)
		if err != nil {
			return nil, err
		}

		material, err := keys.New(keys.Request{
			Spec:     spec,
			Password: password,
			Salt:     salt,
			Decrypt:  true,
		})
		if err != nil {
			return nil, err
		}

		material.IV = iv

		return material, nil
	}

	return keys.New(keys.Request{
		Spec:     spec,
		HexKey:   cfg.Key,
		HexIV:    cfg.IV,
		Password: password,
		Decrypt:  cfg.Decrypt,
	})
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
