// Package keys produces the symmetric key and IV for a cipher job.
//
// Key material comes from one of three places: an explicit hex-encoded key
// and IV, a password stretched with PBKDF2 over a random salt, or an explicit
// key with a generated IV. Buffers are owned by the job and must be zeroed
// with Material.Zero on every exit path.
package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
	"github.com/kaleb-himes/wolfCLU/pkg/hexenc"
)

const (
	// SaltSize is the fixed salt length in bytes for password derivation.
	SaltSize = 8
	// Iterations is the fixed PBKDF2 iteration count.
	Iterations = 4096
)

// Source records where the key material came from.
type Source int

const (
	// PasswordDerived means the key was stretched from a password and salt.
	PasswordDerived Source = iota
	// ExplicitHex means the key was supplied hex-encoded on the command line.
	ExplicitHex
)

// Material holds the key, IV and (for password derivation) salt of one job.
type Material struct {
	Key  []byte
	IV   []byte
	Salt []byte

	Source Source
}

// Zero overwrites all buffers. Safe to call more than once.
func (m *Material) Zero() {
	zero(m.Key)
	zero(m.IV)
	zero(m.Salt)
}

// Request describes the inputs available for producing key material.
type Request struct {
	// Spec is the resolved algorithm; sizes are validated against it.
	Spec algo.Spec

	// HexKey is an explicit hex-encoded key, empty when password-derived.
	HexKey string

	// HexIV is an explicit hex-encoded IV, empty to generate (encrypt) or
	// read from the stream (password-mode decrypt).
	HexIV string

	// Password is the passphrase for PBKDF2 derivation. Ignored when HexKey
	// is set. The caller keeps ownership; New does not zero it.
	Password []byte

	// Salt forces a specific salt instead of a random one. Used on decrypt,
	// where the salt is recovered from the ciphertext stream.
	Salt []byte

	// Decrypt selects the decrypt path, which never generates an IV.
	Decrypt bool
}

// New resolves a Request into Material.
//
// On error the partially built material is zeroed before returning.
func New(req Request) (*Material, error) {
	if req.HexKey != "" {
		return newExplicit(req)
	}

	return newDerived(req)
}

// newExplicit validates and adopts a hex key, and a hex IV when present.
// Decrypting without an IV fails: explicit-key streams carry no IV header.
func newExplicit(req Request) (*Material, error) {
	key, err := hexenc.Decode(req.HexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	if len(key) != req.Spec.KeyLen() {
		zero(key)

		return nil, fmt.Errorf("%w: got %d bytes, %s requires %d",
			ErrKeyLengthMismatch, len(key), req.Spec, req.Spec.KeyLen())
	}

	m := &Material{Key: key, Source: ExplicitHex}

	iv, err := decodeIV(req.Spec, req.HexIV)
	if err != nil {
		m.Zero()

		return nil, err
	}

	if iv == nil {
		if req.Decrypt {
			m.Zero()

			return nil, fmt.Errorf("%w: decrypting with an explicit key requires the original IV", ErrMissingIV)
		}

		if iv, err = randomBytes(req.Spec.BlockSize()); err != nil {
			m.Zero()

			return nil, err
		}
	}

	m.IV = iv

	return m, nil
}

// newDerived stretches a password into a key, generating salt and IV as needed.
func newDerived(req Request) (*Material, error) {
	if len(req.Password) == 0 {
		return nil, fmt.Errorf("no key material: supply a password or a hex key")
	}

	salt := req.Salt
	if salt == nil {
		var err error
		if salt, err = randomBytes(SaltSize); err != nil {
			return nil, err
		}
	} else if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	key := pbkdf2.Key(req.Password, salt, Iterations, req.Spec.KeyLen(), sha256.New)

	m := &Material{Key: key, Salt: salt, Source: PasswordDerived}

	iv, err := decodeIV(req.Spec, req.HexIV)
	if err != nil {
		m.Zero()

		return nil, err
	}

	if iv == nil && !req.Decrypt {
		if iv, err = randomBytes(req.Spec.BlockSize()); err != nil {
			m.Zero()

			return nil, err
		}
	}

	m.IV = iv

	return m, nil
}

// decodeIV decodes an optional hex IV and validates its length.
func decodeIV(spec algo.Spec, hexIV string) ([]byte, error) {
	iv, err := hexenc.Decode(hexIV)
	if err != nil {
		return nil, fmt.Errorf("decoding IV: %w", err)
	}

	if iv != nil && len(iv) != spec.BlockSize() {
		zero(iv)

		return nil, fmt.Errorf("%w: got %d bytes, %s requires %d",
			ErrIVLengthMismatch, len(iv), spec, spec.BlockSize())
	}

	return iv, nil
}

// randomBytes draws n bytes from the cryptographically secure source.
func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("random source: %w", err)
	}

	return buf, nil
}

// zero securely overwrites a byte slice.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
