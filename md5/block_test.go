package md5_test

import (
	"testing"

	"github.com/byte4ever/md5kit/md5"

	"github.com/stretchr/testify/assert"
)

func TestCompress_empty_message_block(t *testing.T) {
	t.Parallel()

	got := md5.Compress(md5.InitialState(), md5.Pad(nil))

	assert.Equal(
		t,
		[4]uint32{0xd98c1dd4, 0x04b2008f, 0x980980e9, 0x7e42f8ec},
		got,
	)
}

func TestCompress_does_not_mutate_block(t *testing.T) {
	t.Parallel()

	block := make([]byte, md5.BlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	orig := append([]byte(nil), block...)

	md5.Compress(md5.InitialState(), block)

	assert.Equal(t, orig, block)
}

func TestCompress_is_deterministic(t *testing.T) {
	t.Parallel()

	block := make([]byte, md5.BlockSize)
	st := [4]uint32{1, 2, 3, 4}

	assert.Equal(t, md5.Compress(st, block), md5.Compress(st, block))
	assert.NotEqual(t, md5.Compress(st, block), md5.Compress(md5.InitialState(), block))
}

func TestCompress_panics_on_partial_block(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		md5.Compress(md5.InitialState(), make([]byte, md5.BlockSize-1))
	})
}
