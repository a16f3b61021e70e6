// Package algo resolves user-facing algorithm names such as "aes-cbc-256" or
// "sha512" into validated algorithm specifications.
//
// A Spec produced by Parse is the only way to name an algorithm downstream,
// so no invalid family/mode/size combination can flow past this package.
package algo

import (
	"fmt"
	"strconv"
	"strings"
)

// Family identifies a cipher or hash family.
type Family string

const (
	AES       Family = "aes"
	TripleDES Family = "3des"
	Camellia  Family = "camellia"
	MD5       Family = "md5"
	SHA1      Family = "sha"
	SHA256    Family = "sha256"
	SHA384    Family = "sha384"
	SHA512    Family = "sha512"
	Blake2b   Family = "blake2b"
)

// Mode identifies a block cipher mode. Hash families carry ModeNone.
type Mode string

const (
	ModeNone Mode = ""
	CBC      Mode = "cbc"
	CTR      Mode = "ctr"
)

// Spec is a validated (family, mode, key size) triple. Immutable once parsed.
type Spec struct {
	Family      Family
	Mode        Mode
	KeySizeBits int
}

// keySizes lists the legal key sizes in bits per cipher family.
var keySizes = map[Family][]int{
	AES:       {128, 192, 256},
	TripleDES: {56, 112, 168},
	Camellia:  {128, 192, 256},
}

// digestSizes lists the fixed digest size in bytes per hash family.
// Blake2b is absent: its output size is variable (1-64 bytes).
var digestSizes = map[Family]int{
	MD5:    16,
	SHA1:   20,
	SHA256: 32,
	SHA384: 48,
	SHA512: 64,
}

// Blake2bMaxSize is the largest digest blake2b can produce, and its default.
const Blake2bMaxSize = 64

// Parse resolves a dash-delimited algorithm name.
//
// Cipher names are {family}-{mode}-{size}, e.g. "aes-cbc-256". Hash names are
// the bare family, e.g. "sha512"; "sha1" is accepted as an alias for "sha".
func Parse(name string) (Spec, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == "sha1" {
		name = string(SHA1)
	}

	if _, ok := digestSizes[Family(name)]; ok || Family(name) == Blake2b {
		return Spec{Family: Family(name)}, nil
	}

	parts := strings.Split(name, "-")

	const cipherParts = 3
	if len(parts) != cipherParts {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}

	family := Family(parts[0])

	sizes, ok := keySizes[family]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, parts[0])
	}

	mode := Mode(parts[1])

	switch mode {
	case CBC:
	case CTR:
		if family != AES {
			return Spec{}, fmt.Errorf("%w: ctr is only available for aes", ErrInvalidMode)
		}
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidMode, parts[1])
	}

	bits, err := strconv.Atoi(parts[2])
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidKeySize, parts[2])
	}

	for _, s := range sizes {
		if bits == s {
			return Spec{Family: family, Mode: mode, KeySizeBits: bits}, nil
		}
	}

	return Spec{}, fmt.Errorf("%w: %d bits is not valid for %s (valid: %v)",
		ErrInvalidKeySize, bits, family, sizes)
}

// IsHash reports whether the spec names a hash rather than a cipher.
func (s Spec) IsHash() bool {
	_, ok := keySizes[s.Family]

	return !ok
}

// KeyLen returns the key length in bytes for a cipher spec.
//
// DES-family key sizes count effective bits only; each 7 effective bits is
// carried in an 8-bit byte with parity, so 56/112/168 map to 8/16/24 bytes.
func (s Spec) KeyLen() int {
	if s.Family == TripleDES {
		return s.KeySizeBits / 7
	}

	return s.KeySizeBits / 8
}

// BlockSize returns the cipher block size in bytes: 16 for AES and Camellia,
// 8 for 3DES, 0 for hashes.
func (s Spec) BlockSize() int {
	switch s.Family {
	case AES, Camellia:
		return 16
	case TripleDES:
		return 8
	default:
		return 0
	}
}

// DigestSize returns the digest length in bytes for a hash spec.
// Blake2b reports its maximum (and default) size.
func (s Spec) DigestSize() int {
	if s.Family == Blake2b {
		return Blake2bMaxSize
	}

	return digestSizes[s.Family]
}

// String returns the canonical user-facing name.
func (s Spec) String() string {
	if s.IsHash() {
		return string(s.Family)
	}

	return fmt.Sprintf("%s-%s-%d", s.Family, s.Mode, s.KeySizeBits)
}

// All enumerates every supported algorithm, ciphers first, for benchmarking.
func All() []Spec {
	specs := make([]Spec, 0, 16)

	for _, family := range []Family{AES, TripleDES, Camellia} {
		for _, bits := range keySizes[family] {
			specs = append(specs, Spec{Family: family, Mode: CBC, KeySizeBits: bits})
		}
	}

	for _, bits := range keySizes[AES] {
		specs = append(specs, Spec{Family: AES, Mode: CTR, KeySizeBits: bits})
	}

	for _, family := range []Family{MD5, SHA1, SHA256, SHA384, SHA512, Blake2b} {
		specs = append(specs, Spec{Family: family})
	}

	return specs
}
