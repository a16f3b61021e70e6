// Package hashing folds a byte stream into a message digest in fixed-size
// chunks, supporting both fixed-output families and sized blake2b output.
package hashing

import (
	"crypto/md5"  //nolint:gosec // md5 is part of the supported algorithm set
	"crypto/sha1" //nolint:gosec // sha1 is part of the supported algorithm set
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
)

// DefaultChunkSize is the read granularity for streaming digests.
const DefaultChunkSize = 16384

// Job describes one hashing run.
type Job struct {
	// Spec is the resolved hash algorithm.
	Spec algo.Spec

	// Size constrains the blake2b output length in bytes (1-64). Zero means
	// the algorithm's fixed or default size. Rejected for fixed-size hashes.
	Size int

	// Limit stops after this many input bytes even if more remain. Zero
	// means unlimited.
	Limit int64

	// ChunkSize overrides the read granularity. Zero means DefaultChunkSize.
	ChunkSize int
}

// Sum streams the reader through the digest and returns the final value.
func (j *Job) Sum(reader io.Reader) ([]byte, error) {
	digest, err := j.newDigest()
	if err != nil {
		return nil, err
	}

	if j.Limit > 0 {
		reader = io.LimitReader(reader, j.Limit)
	}

	chunk := j.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	buf := make([]byte, chunk)

	if _, err := io.CopyBuffer(digest, reader, buf); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return digest.Sum(nil), nil
}

// newDigest builds the incremental hash state for the job.
func (j *Job) newDigest() (hash.Hash, error) {
	if j.Size != 0 && j.Spec.Family != algo.Blake2b {
		return nil, fmt.Errorf("%s has a fixed %d-byte digest", j.Spec, j.Spec.DigestSize())
	}

	return New(j.Spec, j.Size)
}

// New builds the incremental hash state for a spec. For blake2b, size
// constrains the output length (1-64 bytes); zero means the default.
func New(spec algo.Spec, size int) (hash.Hash, error) {
	if !spec.IsHash() {
		return nil, fmt.Errorf("%s is not a hash", spec)
	}

	switch spec.Family {
	case algo.MD5:
		return md5.New(), nil //nolint:gosec
	case algo.SHA1:
		return sha1.New(), nil //nolint:gosec
	case algo.SHA256:
		return sha256.New(), nil
	case algo.SHA384:
		return sha512.New384(), nil
	case algo.SHA512:
		return sha512.New(), nil
	case algo.Blake2b:
		if size == 0 {
			size = algo.Blake2bMaxSize
		}

		digest, err := blake2b.New(size, nil)
		if err != nil {
			return nil, fmt.Errorf("sizing blake2b output: %w", err)
		}

		return digest, nil
	default:
		return nil, fmt.Errorf("%s is not a hash", spec)
	}
}
