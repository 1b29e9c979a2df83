package md5

import (
	"encoding/binary"
)

// Pad returns msg framed for compression: a single 0x80 byte,
// zero bytes up to 56 mod 64, then the message length in bits
// as a little-endian uint64. The result is always a non-empty
// multiple of BlockSize. msg is not modified.
func Pad(msg []byte) []byte {
	out := make([]byte, len(msg), PaddedLen(uint64(len(msg))))
	copy(out, msg)

	return appendPadding(out, uint64(len(msg)))
}

// PaddedLen returns the framed length in bytes of an n-byte
// message.
func PaddedLen(n uint64) int {
	return int(n) + padLen(n)
}

// padLen is the number of bytes Pad appends to an n-byte
// message: the marker, the zero run and the length field.
func padLen(n uint64) int {
	zeros := (lenOffset - 1 - int(n%BlockSize) + BlockSize) % BlockSize

	return 1 + zeros + 8
}

// appendPadding appends the framing for a message of n bytes
// in total to dst. Only the bit length modulo 2^64 is encoded.
func appendPadding(dst []byte, n uint64) []byte {
	var tmp [BlockSize + 8]byte

	tmp[0] = 0x80
	pl := padLen(n)
	binary.LittleEndian.PutUint64(tmp[pl-8:pl], n<<3)

	return append(dst, tmp[:pl]...)
}
