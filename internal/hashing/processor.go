package hashing

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/kaleb-himes/wolfCLU/pkg/hexenc"
)

// Result represents the outcome of hashing a single file.
type Result struct {
	// Input file path
	Input string

	// Digest of the file contents
	Digest []byte

	// Any error that occurred during processing
	Error error
}

// Processor hashes a set of files concurrently. Each file remains a single
// sequential job; only whole files run in parallel.
type Processor struct {
	job      Job
	parallel int
	results  chan Result
}

// NewProcessor creates a Processor running up to parallel jobs at once.
func NewProcessor(job Job, parallel int) *Processor {
	if parallel < 1 {
		parallel = 1
	}

	return &Processor{job: job, parallel: parallel}
}

// HashFiles digests every file and prints "<hex>  <file>" lines to out as
// they complete. Per-file failures go to stderr and do not stop the rest.
// Returns the number of successfully processed files and the number of errors.
func (p *Processor) HashFiles(files []string, out io.Writer) (processed, errored int, err error) {
	p.results = make(chan Result, len(files))

	group := errgroup.Group{}
	group.SetLimit(p.parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error hashing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			fmt.Fprintf(out, "%s  %s\n", hexenc.Encode(result.Digest), result.Input)
		}
	}()

	for _, file := range files {
		file := file

		group.Go(func() error {
			digest, err := p.hashFile(file)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Digest: digest}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, fmt.Errorf("hashing files: %w", err)
	}

	return processed, errored, nil
}

func (p *Processor) hashFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	job := p.job

	return job.Sum(f)
}
