// Package fileutil provides shared file and stream helpers.
package fileutil

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path value selecting standard input or output.
const Stdin = "-"

// OpenInput opens path for reading; empty or "-" selects standard input.
// The returned closer is a no-op for standard input.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %q: %w", path, err)
	}

	return f, nil
}

// nopWriteCloser passes writes through and ignores Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenOutput creates path for writing with owner-only permissions; empty or
// "-" selects standard output. The returned closer is a no-op for standard
// output.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdin {
		return nopWriteCloser{os.Stdout}, nil
	}

	const ownerReadWrite = 0o600

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, ownerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("opening output %q: %w", path, err)
	}

	return f, nil
}
