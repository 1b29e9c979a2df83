// Package md5 is a from-scratch implementation of the MD5 message digest
// defined in RFC 1321. Sum hashes a complete byte slice; New returns a
// streaming Digest that accepts input across many Write calls and is
// closed with Finalize. ToHex and ParseHex convert between the 16-byte
// digest and its 32-character hexadecimal form.
//
// The engine is split the way the algorithm is usually explained: Pad
// frames a message into 512-bit blocks, Compress advances the four-word
// state by one block, and the digest is the final state serialised
// little-endian. Both are exported so that callers can walk through a
// computation one stage at a time.
//
// MD5 is cryptographically broken and must not be relied on for
// collision resistance. This package reproduces it exactly.
package md5
