// Package hexenc converts between ASCII hex strings and raw byte buffers.
//
// It is used for user-supplied keys, IVs and salts, where an empty value is
// legal and means "not provided".
package hexenc

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrMalformedHex is returned when a string is not valid even-length hex.
var ErrMalformedHex = errors.New("malformed hex")

// Decode converts a hex string to raw bytes.
//
// Empty input decodes to nil with no error, so optional arguments can pass
// through unchecked. Odd-length input or any character outside [0-9a-fA-F]
// fails with ErrMalformedHex.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	out, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w: invalid character %q", ErrMalformedHex, byte(invalid))
		}

		if errors.Is(err, hex.ErrLength) {
			return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHex, len(s))
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}

	return out, nil
}

// Encode converts raw bytes to a lowercase hex string.
// Decode(Encode(b)) == b for all b.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}
