package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{0x12, 0x34, 0x00, 0x00, 0x01, 0x2C, 0xAB})

	v16, err := c.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v16)

	v32, err := c.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(300), v32)

	v8, err := c.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), v8)
	require.Equal(t, 0, c.Remaining())
	require.Equal(t, 7, c.Offset())
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01})
	_, err := c.ReadU16()
	require.ErrorIs(t, err, ErrTruncated)

	c = NewCursor([]byte{0x01, 0x02, 0x03})
	_, err = c.ReadU32()
	require.ErrorIs(t, err, ErrTruncated)

	c = NewCursor(nil)
	_, err = c.ReadU8()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestCursorActiveWindow(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	_, err := c.ReadU16()
	require.NoError(t, err)

	require.ErrorIs(t, c.SetActive(4), ErrTruncated)
	require.NoError(t, c.SetActive(2))
	require.Equal(t, 2, c.Remaining())

	_, err = c.ReadU32()
	require.ErrorIs(t, err, ErrTruncated)

	b, err := c.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4}, b)
	require.Equal(t, 0, c.Remaining())

	c.ClearActive()
	require.Equal(t, 1, c.Remaining())
}

func TestCursorReadBytesCopies(t *testing.T) {
	buf := []byte{1, 2, 3}
	c := NewCursor(buf)
	b, err := c.ReadBytes(3)
	require.NoError(t, err)
	buf[0] = 9
	require.Equal(t, []byte{1, 2, 3}, b)
}
