package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"

	"github.com/aead/camellia"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
)

// NewBlockCipher constructs the block cipher primitive for a resolved spec.
// The key length has already been validated against the spec.
func NewBlockCipher(spec algo.Spec, key []byte) (cipher.Block, error) {
	switch spec.Family {
	case algo.AES:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating aes cipher: %w", err)
		}

		return block, nil

	case algo.TripleDES:
		block, err := des.NewTripleDESCipher(expandTripleDESKey(key))
		if err != nil {
			return nil, fmt.Errorf("creating 3des cipher: %w", err)
		}

		return block, nil

	case algo.Camellia:
		block, err := camellia.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating camellia cipher: %w", err)
		}

		return block, nil

	default:
		return nil, fmt.Errorf("%s is not a block cipher", spec.Family)
	}
}

// expandTripleDESKey widens short 3DES keys to the 24-byte EDE form:
// 8 bytes become K1,K1,K1 and 16 bytes become K1,K2,K1.
func expandTripleDESKey(key []byte) []byte {
	const edeKeyLen = 24

	switch len(key) {
	case 8:
		out := make([]byte, 0, edeKeyLen)
		out = append(out, key...)
		out = append(out, key...)

		return append(out, key...)
	case 16:
		out := make([]byte, 0, edeKeyLen)
		out = append(out, key...)

		return append(out, key[:8]...)
	default:
		return key
	}
}
