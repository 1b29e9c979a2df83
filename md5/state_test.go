package md5_test

import (
	"encoding/binary"
	"testing"

	"github.com/byte4ever/md5kit/md5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_marshal_resume(t *testing.T) {
	t.Parallel()

	in := []byte("The quick brown fox jumps over the lazy dog, twice over the lazy dog")
	want := md5.Sum(in)

	for split := 0; split <= len(in); split += 7 {
		d := md5.New()

		_, err := d.Write(in[:split])
		require.NoError(t, err)

		state, err := d.MarshalBinary()
		require.NoError(t, err)

		resumed := new(md5.Digest)
		require.NoError(t, resumed.UnmarshalBinary(state))

		_, err = resumed.Write(in[split:])
		require.NoError(t, err)

		got, err := resumed.Finalize()
		require.NoError(t, err)
		assert.Equalf(t, want, got, "split at %d", split)
	}
}

func TestDigest_marshal_keeps_finalized(t *testing.T) {
	t.Parallel()

	d := md5.New()

	_, err := d.Finalize()
	require.NoError(t, err)

	state, err := d.MarshalBinary()
	require.NoError(t, err)

	resumed := new(md5.Digest)
	require.NoError(t, resumed.UnmarshalBinary(state))

	_, err = resumed.Write([]byte("x"))
	assert.ErrorIs(t, err, md5.ErrFinalized)
}

func TestDigest_unmarshal_rejects_garbage(t *testing.T) {
	t.Parallel()

	good, err := md5.New().MarshalBinary()
	require.NoError(t, err)

	badMagic := append([]byte(nil), good...)
	badMagic[0] = 'x'

	badFlag := append([]byte(nil), good...)
	badFlag[len(badFlag)-1] = 7

	for name, in := range map[string][]byte{
		"empty":     nil,
		"truncated": good[:len(good)-1],
		"magic":     badMagic,
		"flag":      badFlag,
	} {
		err := new(md5.Digest).UnmarshalBinary(in)

		assert.ErrorIsf(t, err, md5.ErrInvalidState, name)
	}
}

// A length counter of 2^61 bytes is 2^64 bits, which the
// length field encodes as zero.
func TestDigest_bit_length_wraps_modulo_2_64(t *testing.T) {
	t.Parallel()

	state, err := md5.New().MarshalBinary()
	require.NoError(t, err)

	lenAt := len(state) - 1 - 8
	binary.BigEndian.PutUint64(state[lenAt:], 1<<61)

	d := new(md5.Digest)
	require.NoError(t, d.UnmarshalBinary(state))

	got, err := d.Finalize()
	require.NoError(t, err)
	assert.Equal(t, md5.Sum(nil), got)
}

func TestDigest_zero_value_marshals_initial_state(t *testing.T) {
	t.Parallel()

	var d md5.Digest

	got, err := d.MarshalBinary()
	require.NoError(t, err)

	want, err := md5.New().MarshalBinary()
	require.NoError(t, err)

	assert.Equal(t, want, got)
}
