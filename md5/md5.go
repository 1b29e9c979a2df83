package md5

import (
	"errors"
	"fmt"
	"hash"
	"io"
)

// ErrFinalized is returned when a Digest is written to or
// finalized again after Finalize.
var ErrFinalized = errors.New("md5: digest already finalized")

var (
	_ hash.Hash       = (*Digest)(nil)
	_ io.StringWriter = (*Digest)(nil)
)

// Digest is one streaming MD5 computation. The zero value is
// an empty computation ready for use. A Digest must not be
// shared between goroutines.
type Digest struct {
	s     [4]uint32
	x     [BlockSize]byte
	nx    int
	len   uint64
	final bool
	ready bool
}

// New returns a Digest in its initial state.
func New() *Digest {
	d := new(Digest)
	d.Reset()

	return d
}

// Reset discards everything written so far, including a
// previous Finalize, and starts an independent computation.
func (d *Digest) Reset() {
	d.s = initialState
	d.x = [BlockSize]byte{}
	d.nx = 0
	d.len = 0
	d.final = false
	d.ready = true
}

// ensureInit gives a zero Digest its starting registers.
func (d *Digest) ensureInit() {
	if !d.ready {
		d.Reset()
	}
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the compression block length in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Len returns the number of message bytes written so far,
// modulo 2^64.
func (d *Digest) Len() uint64 { return d.len }

// Write feeds p into the computation. Every full block is
// compressed as soon as it is available; a partial block is
// buffered until the next call. It returns ErrFinalized once
// Finalize has been called.
func (d *Digest) Write(p []byte) (int, error) {
	d.ensureInit()

	if d.final {
		return 0, ErrFinalized
	}

	nn := len(p)
	d.len += uint64(nn)

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n

		if d.nx == BlockSize {
			d.s = Compress(d.s, d.x[:])
			d.nx = 0
		}

		p = p[n:]
	}

	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		d.s = compressAll(d.s, p[:n])
		p = p[n:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return nn, nil
}

// WriteString is Write for a string without an extra copy by
// the caller.
func (d *Digest) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// Finalize pads the buffered remainder, compresses the last
// block or two and returns the digest. The Digest becomes
// terminal: later Write and Finalize calls return
// ErrFinalized until Reset.
func (d *Digest) Finalize() ([Size]byte, error) {
	if d.final {
		return [Size]byte{}, ErrFinalized
	}

	sum := d.checkSum()
	d.final = true

	return sum, nil
}

// Sum appends the digest of the data written so far to in. It
// does not change the computation, so writing may continue
// afterwards. It exists to satisfy hash.Hash.
func (d *Digest) Sum(in []byte) []byte {
	sum := d.checkSum()

	return append(in, sum[:]...)
}

// checkSum computes the digest on a copy of the state.
func (d *Digest) checkSum() [Size]byte {
	d.ensureInit()

	var buf [2 * BlockSize]byte

	tail := appendPadding(append(buf[:0], d.x[:d.nx]...), d.len)

	return Assemble(compressAll(d.s, tail))
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	var d Digest

	d.Reset()
	_, _ = d.Write(data) //nolint:errcheck // fresh digest never fails

	return d.checkSum()
}

// SumReader streams r through a new Digest and returns the
// digest once r reports io.EOF.
func SumReader(r io.Reader) ([Size]byte, error) {
	const errCtx = "summing reader"

	d := New()

	if _, err := io.Copy(d, r); err != nil {
		return [Size]byte{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	sum, err := d.Finalize()
	if err != nil {
		return [Size]byte{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return sum, nil
}
