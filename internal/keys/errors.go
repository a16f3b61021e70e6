package keys

import "errors"

var (
	// ErrKeyLengthMismatch is returned when an explicit key does not match the
	// algorithm's key length. Keys are never truncated or padded.
	ErrKeyLengthMismatch = errors.New("key length mismatch")
	// ErrIVLengthMismatch is returned when an explicit IV does not match the
	// cipher block size.
	ErrIVLengthMismatch = errors.New("iv length mismatch")
	// ErrMissingIV is returned when decrypting in explicit-key mode without
	// the original IV.
	ErrMissingIV = errors.New("missing iv")
)
