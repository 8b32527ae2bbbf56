package md5

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"

	"github.com/chksum/go-chksum/core/hash"
	"github.com/chksum/go-chksum/digest"
)

// Size of an MD5 digest in bytes.
const Size = 16

// Digest is an MD5 digest value.
type Digest [Size]byte

var _ digest.Digest = Digest{}

func (d Digest) Algorithm() digest.Algorithm {
	return digest.MD5
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
	v, err := digest.Parse(digest.MD5, s)
	if err != nil {
		return Digest{}, err
	}
	copy(d[:], v.Bytes())
	return d, nil
}

// RFC 1321 initialization vector.
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// per-round left-rotation amounts
var shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// per-round additive constants
var table = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

type compressor struct {
	s [4]uint32
}

var _ hash.Compressor[Digest] = (*compressor)(nil)

func newCompressor() *compressor {
	return &compressor{s: [4]uint32{init0, init1, init2, init3}}
}

func (c *compressor) Compress(block *[hash.BlockSize]byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, cc, d := c.s[0], c.s[1], c.s[2], c.s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & cc) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & cc)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ cc ^ d
			g = (3*i + 5) % 16
		default:
			f = cc ^ (b | ^d)
			g = (7 * i) % 16
		}
		f += a + table[i] + m[g]
		a, d, cc, b = d, cc, b, b+bits.RotateLeft32(f, shifts[i])
	}

	c.s[0] += a
	c.s[1] += b
	c.s[2] += cc
	c.s[3] += d
}

func (c *compressor) Sum() Digest {
	var d Digest
	for i, w := range c.s {
		binary.LittleEndian.PutUint32(d[i*4:], w)
	}
	return d
}

// New returns a streaming MD5 engine. The length field and digest words are
// little-endian.
func New() *hash.Engine[Digest] {
	return hash.NewEngine[Digest](newCompressor(), hash.LittleEndian)
}

// Sum computes the MD5 digest of data in one shot.
func Sum(data []byte) Digest {
	e := New()
	e.Write(data)
	return e.Sum()
}
