package scanner

// cursor is a forward-only reader over an immutable source buffer. It
// tracks the byte offset plus the last two consumed bytes, and allows
// arbitrary lookahead without consuming. pos never moves backward and
// never exceeds len(src).
type cursor struct {
	src      []byte
	pos      int
	prev     byte
	curr     byte
	prevSeen bool
	currSeen bool
}

func newCursor(src []byte) cursor {
	return cursor{src: src}
}

// peek returns the byte n positions ahead of the read point without
// consuming it. n = 0 is the next unconsumed byte.
func (c *cursor) peek(n int) (byte, bool) {
	if c.pos+n >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos+n], true
}

// advance consumes one byte and returns it. At end of input it is a
// no-op returning ok = false; calling it repeatedly there is safe.
func (c *cursor) advance() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	c.prev, c.prevSeen = c.curr, c.currSeen
	c.curr, c.currSeen = c.src[c.pos], true
	c.pos++
	return c.curr, true
}

// window slices the bytes consumed since start. Valid while the source
// buffer is alive.
func (c *cursor) window(start int) []byte {
	return c.src[start:c.pos]
}
