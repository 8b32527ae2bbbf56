package hash

import "encoding/binary"

// BlockSize is the number of input bytes consumed by one compression step.
const BlockSize = 64

const (
	// terminator marks the end of the message in the final block.
	terminator = 0x80
	// lengthSize is the size of the bit-length field closing the final block.
	lengthSize = 8
)

// Compressor is the per-block state transition of a Merkle–Damgård hash.
// Compress folds one full block into the running state. Sum serializes the
// state into the algorithm's digest type.
type Compressor[D any] interface {
	Compress(block *[BlockSize]byte)
	Sum() D
}

// ByteOrder selects how the engine serializes the 8-byte bit-length field
// during finalization. MD5 is little-endian, SHA-256 is big-endian.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// Engine buffers arbitrarily chunked writes into fixed-size blocks and feeds
// them to a Compressor. The digest it produces is invariant under the
// chunking of writes. An Engine is not safe for concurrent use.
type Engine[D any] struct {
	compressor Compressor[D]
	order      ByteOrder
	block      [BlockSize]byte
	offset     int
	length     uint64
}

// NewEngine binds a compressor and a byte order for the length field.
func NewEngine[D any](compressor Compressor[D], order ByteOrder) *Engine[D] {
	return &Engine[D]{compressor: compressor, order: order}
}

// Write feeds bytes to the engine, compressing each block the instant it
// fills. It never returns an error.
func (e *Engine[D]) Write(p []byte) (int, error) {
	n := len(p)
	// counted up front so the final bit length covers every byte written,
	// wrapping on overflow
	e.length += uint64(n)
	for len(p) > 0 {
		c := copy(e.block[e.offset:], p)
		e.offset += c
		p = p[c:]
		if e.offset == BlockSize {
			e.compressor.Compress(&e.block)
			e.offset = 0
		}
	}
	return n, nil
}

// Sum performs Merkle–Damgård finalization and returns the digest. It
// consumes the engine: neither Write nor Sum may be called afterwards.
//
// When the buffered bytes leave room for the terminator and the 8-byte
// length field, a single final block is emitted. Otherwise the current
// block is closed with the terminator and zeros, and the length goes into
// a second, otherwise-zero block.
func (e *Engine[D]) Sum() D {
	bits := e.length * 8

	e.block[e.offset] = terminator
	if e.offset <= BlockSize-1-lengthSize {
		for i := e.offset + 1; i < BlockSize-lengthSize; i++ {
			e.block[i] = 0
		}
		e.putLength(bits)
		e.compressor.Compress(&e.block)
	} else {
		// no room for the length field; it spills into a second block
		for i := e.offset + 1; i < BlockSize; i++ {
			e.block[i] = 0
		}
		e.compressor.Compress(&e.block)

		for i := 0; i < BlockSize-lengthSize; i++ {
			e.block[i] = 0
		}
		e.putLength(bits)
		e.compressor.Compress(&e.block)
	}

	return e.compressor.Sum()
}

// Length returns the number of bytes written so far, modulo 2^64.
func (e *Engine[D]) Length() uint64 {
	return e.length
}

func (e *Engine[D]) putLength(bits uint64) {
	if e.order == BigEndian {
		binary.BigEndian.PutUint64(e.block[BlockSize-lengthSize:], bits)
	} else {
		binary.LittleEndian.PutUint64(e.block[BlockSize-lengthSize:], bits)
	}
}
