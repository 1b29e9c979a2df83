package explain

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/byte4ever/md5kit/md5"
)

// State is a printable snapshot of the four registers.
type State struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
	C string `json:"c" yaml:"c"`
	D string `json:"d" yaml:"d"`
}

// Block records what one compression step consumed and
// produced.
type Block struct {
	Index  int      `json:"index"  yaml:"index"`
	Words  []string `json:"words"  yaml:"words"`
	Before State    `json:"before" yaml:"before"`
	After  State    `json:"after"  yaml:"after"`
}

// Report describes a complete computation.
type Report struct {
	InputBytes   int     `json:"input_bytes"   yaml:"input_bytes"`
	InputBits    uint64  `json:"input_bits"    yaml:"input_bits"`
	PaddingBytes int     `json:"padding_bytes" yaml:"padding_bytes"`
	PaddedBytes  int     `json:"padded_bytes"  yaml:"padded_bytes"`
	Initial      State   `json:"initial"       yaml:"initial"`
	Blocks       []Block `json:"blocks"        yaml:"blocks"`
	Digest       string  `json:"digest"        yaml:"digest"`
}

// Trace hashes msg block by block and records every
// intermediate state.
func Trace(msg []byte) Report {
	padded := md5.Pad(msg)
	st := md5.InitialState()

	rep := Report{
		InputBytes:   len(msg),
		InputBits:    uint64(len(msg)) << 3,
		PaddingBytes: len(padded) - len(msg),
		PaddedBytes:  len(padded),
		Initial:      snapshot(st),
		Blocks:       make([]Block, 0, len(padded)/md5.BlockSize),
	}

	for i := 0; i < len(padded); i += md5.BlockSize {
		blk := padded[i : i+md5.BlockSize]
		next := md5.Compress(st, blk)

		rep.Blocks = append(rep.Blocks, Block{
			Index:  i / md5.BlockSize,
			Words:  words(blk),
			Before: snapshot(st),
			After:  snapshot(next),
		})

		st = next
	}

	rep.Digest = md5.ToHex(md5.Assemble(st))

	return rep
}

// Comparison reports how two digests differ.
type Comparison struct {
	DigestA       string  `json:"digest_a"       yaml:"digest_a"`
	DigestB       string  `json:"digest_b"       yaml:"digest_b"`
	DifferingBits int     `json:"differing_bits" yaml:"differing_bits"`
	TotalBits     int     `json:"total_bits"     yaml:"total_bits"`
	Ratio         float64 `json:"ratio"          yaml:"ratio"`
}

// Compare hashes a and b and counts the output bits that
// differ.
func Compare(a, b []byte) Comparison {
	da := md5.Sum(a)
	db := md5.Sum(b)

	diff := 0
	for i := range da {
		diff += bits.OnesCount8(da[i] ^ db[i])
	}

	return Comparison{
		DigestA:       md5.ToHex(da),
		DigestB:       md5.ToHex(db),
		DifferingBits: diff,
		TotalBits:     8 * md5.Size,
		Ratio:         float64(diff) / float64(8*md5.Size),
	}
}

func snapshot(st [4]uint32) State {
	return State{
		A: word(st[0]),
		B: word(st[1]),
		C: word(st[2]),
		D: word(st[3]),
	}
}

// words returns the sixteen little-endian message words of
// blk.
func words(blk []byte) []string {
	out := make([]string, 16)
	for i := range out {
		out[i] = word(binary.LittleEndian.Uint32(blk[4*i:]))
	}

	return out
}

func word(w uint32) string {
	return fmt.Sprintf("%08x", w)
}
