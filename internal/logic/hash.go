package logic

import (
	"fmt"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
	"github.com/kaleb-himes/wolfCLU/internal/config"
	"github.com/kaleb-himes/wolfCLU/internal/fileutil"
	"github.com/kaleb-himes/wolfCLU/internal/hashing"
	"github.com/kaleb-himes/wolfCLU/pkg/hexenc"
)

// RunHash digests standard input, one file, or a set of files.
//
// Output is hex by default; --binary writes the raw digest and requires a
// single input. Multiple files are hashed concurrently, each file as one
// sequential job.
func RunHash(cfg *config.Config) (err error) {
	spec, err := algo.Parse(cfg.Algorithm)
	if err != nil {
		return err
	}

	if !spec.IsHash() {
		return fmt.Errorf("%s is a cipher; use encrypt or decrypt", spec)
	}

	job := hashing.Job{Spec: spec, Size: cfg.Size, Limit: cfg.Length}

	if len(cfg.Files) > 1 {
		if cfg.Binary {
			return fmt.Errorf("binary output supports a single input")
		}

		return hashFiles(cfg, job)
	}

	input := cfg.Input
	if len(cfg.Files) == 1 {
		input = cfg.Files[0]
	}

	in, err := fileutil.OpenInput(input)
	if err != nil {
		return err
	}

	defer in.Close()

	digest, err := job.Sum(in)
	if err != nil {
		return err
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

	if cfg.Binary {
		if cfg.Output == "" || cfg.Output == fileutil.Stdin {
			return fmt.Errorf("binary output requires an output file")
		}

		if _, err := out.Write(digest); err != nil {
			return fmt.Errorf("writing digest: %w", err)
		}

		return nil
	}

	if _, err := fmt.Fprintln(out, hexenc.Encode(digest)); err != nil {
		return fmt.Errorf("writing digest: %w", err)
	}

	return nil
}

func hashFiles(cfg *config.Config, job hashing.Job) (err error) {
	out, err := fileutil.OpenOutput(cfg.Output)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	proc := hashing.NewProcessor(job, cfg.Parallel)

	_, errored, err := proc.HashFiles(cfg.Files, out)
	if err != nil {
		return fmt.Errorf("%d file(s) failed: %w", errored, err)
	}

	return nil
}
