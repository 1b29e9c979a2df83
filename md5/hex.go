package md5

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidHex is returned by ParseHex for input that is not
// exactly 32 hexadecimal characters.
var ErrInvalidHex = errors.New("md5: invalid hex digest")

// ToHex formats sum as 32 lowercase hexadecimal characters.
func ToHex(sum [Size]byte) string {
	return hex.EncodeToString(sum[:])
}

// ParseHex is the inverse of ToHex. Upper and lower case are
// both accepted.
func ParseHex(s string) ([Size]byte, error) {
	var sum [Size]byte

	if len(s) != 2*Size {
		return sum, fmt.Errorf(
			"%w: want %d characters, got %d",
			ErrInvalidHex, 2*Size, len(s),
		)
	}

	if _, err := hex.Decode(sum[:], []byte(s)); err != nil {
		return [Size]byte{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	return sum, nil
}
