package md5_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/byte4ever/md5kit/md5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad_empty_message_is_one_block(t *testing.T) {
	t.Parallel()

	got := md5.Pad(nil)

	require.Len(t, got, md5.BlockSize)
	assert.Equal(t, byte(0x80), got[0])
	assert.Equal(t, make([]byte, 63), got[1:])
}

func TestPad_block_counts(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		0:   1,
		1:   1,
		55:  1,
		56:  2,
		57:  2,
		63:  2,
		64:  2,
		119: 2,
		120: 3,
	}

	for n, blocks := range cases {
		got := md5.Pad(make([]byte, n))

		assert.Lenf(t, got, blocks*md5.BlockSize, "length %d", n)
		assert.Equalf(t, blocks*md5.BlockSize, md5.PaddedLen(uint64(n)), "length %d", n)
	}
}

func TestPad_layout(t *testing.T) {
	t.Parallel()

	for n := 0; n < 200; n++ {
		msg := bytes.Repeat([]byte{0x5a}, n)
		got := md5.Pad(msg)

		require.Zero(t, len(got)%md5.BlockSize)
		assert.GreaterOrEqual(t, len(got)*8, 8*n+65)
		assert.Less(t, len(got)*8, 8*n+65+512)

		assert.Equal(t, msg, got[:n])
		assert.Equal(t, byte(0x80), got[n])

		for _, b := range got[n+1 : len(got)-8] {
			require.Zero(t, b)
		}

		assert.Equal(
			t,
			uint64(8*n),
			binary.LittleEndian.Uint64(got[len(got)-8:]),
		)
		assert.Equal(t, len(got)-n, md5.PadLenForTest(uint64(n)))
	}
}

func TestPad_does_not_alias_input(t *testing.T) {
	t.Parallel()

	msg := make([]byte, 10, 128)
	got := md5.Pad(msg)

	got[0] = 0xff

	assert.Zero(t, msg[0])
}

func TestPad_then_compress_equals_sum(t *testing.T) {
	t.Parallel()

	msg := []byte("The quick brown fox jumps over the lazy dog")
	padded := md5.Pad(msg)
	st := md5.InitialState()

	for i := 0; i < len(padded); i += md5.BlockSize {
		st = md5.Compress(st, padded[i:i+md5.BlockSize])
	}

	assert.Equal(t, md5.Sum(msg), md5.Assemble(st))
}
