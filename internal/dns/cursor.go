package dns

import "encoding/binary"

// Cursor is a bounds-checked read cursor over one message buffer. A cursor
// never grows its buffer; every read either consumes the requested bytes or
// fails with ErrTruncated. SetActive narrows the readable window to an exact
// span (the declared rdlength of a record) without losing access to earlier
// bytes, which name decompression needs for pointer targets.
type Cursor struct {
	buf   []byte
	off   int
	limit int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, limit: len(buf)}
}

// Offset returns the absolute position in the underlying buffer.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the byte count left in the active window.
func (c *Cursor) Remaining() int {
	return c.limit - c.off
}

// SetActive restricts subsequent reads to exactly n bytes.
func (c *Cursor) SetActive(n int) error {
	if n < 0 || c.Remaining() < n {
		return ErrTruncated
	}
	c.limit = c.off + n
	return nil
}

// ClearActive restores the active window to the whole buffer.
func (c *Cursor) ClearActive() {
	c.limit = len(c.buf)
}

func (c *Cursor) ReadU8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, ErrTruncated
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint16(c.buf[c.off : c.off+2])
	c.off += 2
	return v, nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint32(c.buf[c.off : c.off+4])
	c.off += 4
	return v, nil
}

// ReadBytes returns a copy of the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, ErrTruncated
	}
	out := make([]byte, n)
	copy(out, c.buf[c.off:c.off+n])
	c.off += n
	return out, nil
}

// seek moves the cursor to an absolute offset. Used only by the name codec
// when following compression pointers; the target has already been validated.
func (c *Cursor) seek(off int) {
	c.off = off
}
