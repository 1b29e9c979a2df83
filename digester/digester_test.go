package digester_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/byte4ever/md5kit/digester"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDigest_returns_md5(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(pa, []byte("hello"), 0o600))

	got, err := digester.CalculateDigest(pa)

	require.NoError(t, err)
	// md5("hello")
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", got)
}

func TestCalculateDigest_empty_file(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(pa, nil, 0o600))

	got, err := digester.CalculateDigest(pa)

	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", got)
}

func TestCalculateDigest_nonexistent_file(t *testing.T) {
	t.Parallel()

	got, err := digester.CalculateDigest("/nonexistent")

	assert.Empty(t, got)
	assert.NoError(t, err)
}

func TestSaveDigest_writes_md5sum_line(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("hello"), 0o600))

	require.NoError(t, digester.SaveDigest(pa))

	raw, err := os.ReadFile(pa + digester.Ext)
	require.NoError(t, err)
	assert.Equal(
		t,
		"5d41402abc4b2a76b9719d911017c592  data.bin\n",
		string(raw),
	)
}

func TestSaveDigest_nonexistent_file(t *testing.T) {
	t.Parallel()

	err := digester.SaveDigest(filepath.Join(t.TempDir(), "missing"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveDigest_and_GetDigest_roundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))

	require.NoError(t, digester.SaveDigest(pa))

	got, err := digester.GetDigest(pa)
	require.NoError(t, err)

	expected, err := digester.CalculateDigest(pa)
	require.NoError(t, err)

	assert.Equal(t, expected, got)
}

func TestGetDigest_bare_upper_case(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(
		pa+digester.Ext,
		[]byte("5D41402ABC4B2A76B9719D911017C592\n"),
		0o600,
	))

	got, err := digester.GetDigest(pa)

	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", got)
}

func TestGetDigest_malformed_sidecar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa+digester.Ext, []byte("nope"), 0o600))

	_, err := digester.GetDigest(pa)

	require.Error(t, err)
}

func TestVerifyDigest_valid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))
	require.NoError(t, digester.SaveDigest(pa))

	ok, err := digester.VerifyDigest(pa)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyDigest_tampered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))
	require.NoError(t, digester.SaveDigest(pa))

	require.NoError(t, os.WriteFile(pa, []byte("tampered"), 0o600))

	ok, err := digester.VerifyDigest(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyDigest_missing_sidecar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))

	ok, err := digester.VerifyDigest(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}

func FuzzCalculateDigest(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte(""))
	f.Add([]byte("\x00\xff"))

	f.Fuzz(func(t *testing.T, data []byte) {
		t.Parallel()

		dir := t.TempDir()
		pa := filepath.Join(dir, "fuzz.bin")
		require.NoError(t, os.WriteFile(pa, data, 0o600))

		dg, err := digester.CalculateDigest(pa)

		require.NoError(t, err)
		assert.Len(t, dg, 32) // md5 hex is always 32 chars
	})
}
