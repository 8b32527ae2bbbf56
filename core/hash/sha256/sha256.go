package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"

	"github.com/chksum/go-chksum/core/hash"
	"github.com/chksum/go-chksum/digest"
)

// Size of a SHA-256 digest in bytes.
const Size = 32

// Digest is a SHA-256 digest value.
type Digest [Size]byte

var _ digest.Digest = Digest{}

func (d Digest) Algorithm() digest.Algorithm {
	return digest.SHA256
}

func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// String renders the digest as lowercase hex, two characters per byte.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Parse is the exact inverse of String.
func Parse(s string) (Digest, error) {
	var d Digest
	v, err := digest.Parse(digest.SHA256, s)
	if err != nil {
		return Digest{}, err
	}
	copy(d[:], v.Bytes())
	return d, nil
}

// FIPS 180-4 initialization vector.
var initial = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// per-round additive constants
var table = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

type compressor struct {
	s [8]uint32
}

var _ hash.Compressor[Digest] = (*compressor)(nil)

func newCompressor() *compressor {
	return &compressor{s: initial}
}

func (c *compressor) Compress(block *[hash.BlockSize]byte) {
	// expand the 16 block words into the 64-word message schedule
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, cc, d := c.s[0], c.s[1], c.s[2], c.s[3]
	e, f, g, h := c.s[4], c.s[5], c.s[6], c.s[7]

	for i := 0; i < 64; i++ {
		sum1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + sum1 + ch + table[i] + w[i]

		sum0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & cc) ^ (b & cc)
		t2 := sum0 + maj

		h, g, f, e, d, cc, b, a = g, f, e, d+t1, cc, b, a, t1+t2
	}

	c.s[0] += a
	c.s[1] += b
	c.s[2] += cc
	c.s[3] += d
	c.s[4] += e
	c.s[5] += f
	c.s[6] += g
	c.s[7] += h
}

func (c *compressor) Sum() Digest {
	var d Digest
	for i, w := range c.s {
		binary.BigEndian.PutUint32(d[i*4:], w)
	}
	return d
}

// New returns a streaming SHA-256 engine. The length field and digest words
// are big-endian.
func New() *hash.Engine[Digest] {
	return hash.NewEngine[Digest](newCompressor(), hash.BigEndian)
}

// Sum computes the SHA-256 digest of data in one shot.
func Sum(data []byte) Digest {
	e := New()
	e.Write(data)
	return e.Sum()
}
