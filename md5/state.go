package md5

import (
	"encoding/binary"
	"errors"
)

// ErrInvalidState is returned by UnmarshalBinary for input
// not produced by MarshalBinary.
var ErrInvalidState = errors.New("md5: invalid hash state")

const (
	magic         = "md5\x01"
	marshaledSize = len(magic) + 4*4 + BlockSize + 8 + 1
)

// MarshalBinary saves the in-progress computation so it can be
// resumed later, possibly in another process.
func (d *Digest) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the encoded state to b.
func (d *Digest) AppendBinary(b []byte) ([]byte, error) {
	d.ensureInit()

	b = append(b, magic...)
	for _, s := range d.s {
		b = binary.BigEndian.AppendUint32(b, s)
	}

	b = append(b, d.x[:d.nx]...)
	b = append(b, make([]byte, BlockSize-d.nx)...)
	b = binary.BigEndian.AppendUint64(b, d.len)

	var fin byte
	if d.final {
		fin = 1
	}

	return append(b, fin), nil
}

// UnmarshalBinary restores a computation saved by
// MarshalBinary.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return ErrInvalidState
	}

	b = b[len(magic):]

	var st [4]uint32
	for i := range st {
		st[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}

	var x [BlockSize]byte

	copy(x[:], b[:BlockSize])
	b = b[BlockSize:]

	n := binary.BigEndian.Uint64(b)
	b = b[8:]

	if b[0] > 1 {
		return ErrInvalidState
	}

	d.s = st
	d.x = x
	d.len = n
	d.nx = int(n % BlockSize)
	d.final = b[0] == 1
	d.ready = true

	return nil
}
