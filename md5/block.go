package md5

import (
	"encoding/binary"
	"math/bits"
)

// Compress advances state by exactly one BlockSize block and
// returns the new state. It panics if block is not BlockSize
// bytes long.
func Compress(state [4]uint32, block []byte) [4]uint32 {
	if len(block) != BlockSize {
		panic("md5: Compress called with a partial block")
	}

	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]

	for i := 0; i < 64; i++ {
		var f uint32

		switch i >> 4 {
		case 0:
			f = (b & c) | (^b & d)
		case 1:
			f = (b & d) | (c &^ d)
		case 2:
			f = b ^ c ^ d
		default:
			f = c ^ (b | ^d)
		}

		f += a + sines[i] + m[schedule[i]]
		a, d, c = d, c, b
		b += bits.RotateLeft32(f, int(shifts[i]))
	}

	return [4]uint32{
		state[0] + a,
		state[1] + b,
		state[2] + c,
		state[3] + d,
	}
}

// compressAll runs Compress over every whole block of p in
// order. Trailing bytes short of a block are ignored.
func compressAll(state [4]uint32, p []byte) [4]uint32 {
	for len(p) >= BlockSize {
		state = Compress(state, p[:BlockSize])
		p = p[BlockSize:]
	}

	return state
}

// Assemble serialises the registers A, B, C, D little-endian
// into a digest.
func Assemble(state [4]uint32) [Size]byte {
	var out [Size]byte
	for i, s := range state {
		binary.LittleEndian.PutUint32(out[4*i:], s)
	}

	return out
}
