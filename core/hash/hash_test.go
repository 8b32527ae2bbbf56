package hash

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// capture records every block the engine compresses and "digests" to the
// block count.
type capture struct {
	blocks [][BlockSize]byte
}

func (c *capture) Compress(block *[BlockSize]byte) {
	c.blocks = append(c.blocks, *block)
}

func (c *capture) Sum() int {
	return len(c.blocks)
}

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestFinalBlockLayout(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		c := &capture{}
		e := NewEngine[int](c, LittleEndian)
		require.Equal(t, 1, e.Sum())

		block := c.blocks[0]
		require.EqualValues(t, 0x80, block[0])
		for i := 1; i < BlockSize; i++ {
			require.EqualValues(t, 0, block[i], "byte %d", i)
		}
	})

	t.Run("55 bytes fits one final block", func(t *testing.T) {
		c := &capture{}
		e := NewEngine[int](c, LittleEndian)
		e.Write(repeat(0xAA, 55))
		require.Equal(t, 1, e.Sum())

		block := c.blocks[0]
		require.Equal(t, repeat(0xAA, 55), block[:55])
		require.EqualValues(t, 0x80, block[55])
		require.EqualValues(t, uint64(55*8), binary.LittleEndian.Uint64(block[56:]))
	})

	t.Run("56 bytes spills the length field", func(t *testing.T) {
		c := &capture{}
		e := NewEngine[int](c, LittleEndian)
		e.Write(repeat(0xAA, 56))
		require.Equal(t, 2, e.Sum())

		first := c.blocks[0]
		require.Equal(t, repeat(0xAA, 56), first[:56])
		require.EqualValues(t, 0x80, first[56])
		for i := 57; i < BlockSize; i++ {
			require.EqualValues(t, 0, first[i], "byte %d", i)
		}

		second := c.blocks[1]
		for i := 0; i < BlockSize-8; i++ {
			require.EqualValues(t, 0, second[i], "byte %d", i)
		}
		require.EqualValues(t, uint64(56*8), binary.LittleEndian.Uint64(second[56:]))
	})

	t.Run("63 bytes leaves a lone terminator", func(t *testing.T) {
		c := &capture{}
		e := NewEngine[int](c, LittleEndian)
		e.Write(repeat(0xAA, 63))
		require.Equal(t, 2, e.Sum())

		first := c.blocks[0]
		require.Equal(t, repeat(0xAA, 63), first[:63])
		require.EqualValues(t, 0x80, first[63])

		second := c.blocks[1]
		require.EqualValues(t, uint64(63*8), binary.LittleEndian.Uint64(second[56:]))
	})

	t.Run("64 bytes compresses eagerly", func(t *testing.T) {
		c := &capture{}
		e := NewEngine[int](c, LittleEndian)
		e.Write(repeat(0xAA, 64))
		require.Len(t, c.blocks, 1)
		require.Equal(t, 2, e.Sum())

		final := c.blocks[1]
		require.EqualValues(t, 0x80, final[0])
		require.EqualValues(t, uint64(64*8), binary.LittleEndian.Uint64(final[56:]))
	})

	t.Run("big endian length field", func(t *testing.T) {
		c := &capture{}
		e := NewEngine[int](c, BigEndian)
		e.Write(repeat(0xAA, 3))
		require.Equal(t, 1, e.Sum())
		require.EqualValues(t, uint64(3*8), binary.BigEndian.Uint64(c.blocks[0][56:]))
	})
}

func TestLengthCountsEveryWrite(t *testing.T) {
	c := &capture{}
	e := NewEngine[int](c, LittleEndian)
	for i := 0; i < 5; i++ {
		e.Write(repeat(0xAA, 100))
	}
	require.EqualValues(t, 500, e.Length())

	e.Sum()
	final := c.blocks[len(c.blocks)-1]
	require.EqualValues(t, uint64(500*8), binary.LittleEndian.Uint64(final[56:]))
}

func TestBlockBoundaryIndependentOfChunking(t *testing.T) {
	data := repeat(0x41, 200)

	whole := &capture{}
	e := NewEngine[int](whole, LittleEndian)
	e.Write(data)
	e.Sum()

	bytewise := &capture{}
	e = NewEngine[int](bytewise, LittleEndian)
	for _, b := range data {
		e.Write([]byte{b})
	}
	e.Sum()

	require.Equal(t, whole.blocks, bytewise.blocks)
}
