package algo

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when the algorithm family is not recognized.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	// ErrInvalidKeySize is returned when the key size is not legal for the family.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidMode is returned when the cipher mode is not legal for the family.
	ErrInvalidMode = errors.New("invalid mode")
)
