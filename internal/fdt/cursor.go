package fdt

import "encoding/binary"

// cursor walks a read-only byte slice, tracking a current offset. It never
// copies or allocates; every borrow returns a subslice of the same backing
// array the cursor was built from.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte, off int) *cursor {
	return &cursor{buf: buf, off: off}
}

// align advances the cursor to the next 4-byte boundary, if it isn't on one
// already.
func (c *cursor) align() {
	if rem := c.off % 4; rem != 0 {
		c.off += 4 - rem
	}
}

// u32 reads a big-endian uint32 at the current offset and advances past it.
func (c *cursor) u32() uint32 {
	v := binary.BigEndian.Uint32(c.buf[c.off : c.off+4])
	c.off += 4
	return v
}

// cstring borrows the NUL-terminated byte slice starting at the current
// offset (not including the NUL) and advances the cursor past the NUL.
func (c *cursor) cstring() []byte {
	start := c.off
	end := start
	for c.buf[end] != 0 {
		end++
	}
	c.off = end + 1
	return c.buf[start:end]
}

// span borrows n raw bytes at the current offset without advancing.
func (c *cursor) span(n int) []byte {
	return c.buf[c.off : c.off+n]
}

// advance moves the cursor forward by n bytes.
func (c *cursor) advance(n int) {
	c.off += n
}
